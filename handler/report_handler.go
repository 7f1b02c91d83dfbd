package handler

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nikhilarora068/cibil-analyzer/client"
	"github.com/nikhilarora068/cibil-analyzer/dto"
	"github.com/nikhilarora068/cibil-analyzer/service"
)

// noDataMessage explains the likely causes when nothing could be
// extracted, so the caller can show something corrective instead of an
// empty report.
const noDataMessage = "No CIBIL data could be extracted from this PDF. This could be due to: " +
	"(1) The PDF being password protected, (2) Poor image quality requiring manual OCR setup, " +
	"(3) Non-standard CIBIL format. Please try a different CIBIL report or ensure Tesseract OCR is properly installed."

type ReportHandler struct {
	reportService *service.ReportService
	advisorClient *client.AdvisorClient
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, advisorClient *client.AdvisorClient, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		advisorClient: advisorClient,
		logger:        logger,
	}
}

// AnalyzeReport handles POST /report/analyze: one multipart PDF in the
// "pdf_file" field.
func (h *ReportHandler) AnalyzeReport(c *gin.Context) {
	fileHeader, err := c.FormFile("pdf_file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Please select a CIBIL PDF file.", err)
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		h.sendError(c, http.StatusBadRequest, "Please upload a PDF file only.", nil)
		return
	}

	tmp, err := os.CreateTemp("", "report-*.pdf")
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to stage uploaded file", err)
		return
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := c.SaveUploadedFile(fileHeader, tmp.Name()); err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to save uploaded file", err)
		return
	}

	h.logger.Info("analyzing uploaded report", zap.String("filename", fileHeader.Filename), zap.Int64("size", fileHeader.Size))

	result, err := h.reportService.Analyze(c.Request.Context(), tmp.Name())
	if errors.Is(err, dto.ErrNoUsefulData) {
		h.sendError(c, http.StatusUnprocessableEntity, noDataMessage, nil)
		return
	}
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to analyze report", err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		ReportID:        result.ReportID,
		Metrics:         result.Metrics,
		Ratios:          result.Ratios,
		Recommendations: result.Recommendations,
		Context:         result.Context,
		ProcessedAt:     time.Now().Format(time.RFC3339),
	})
}

// AskAdvisor handles POST /report/:id/ask: a free-form prompt answered
// against the stored summary context of a previous analysis.
func (h *ReportHandler) AskAdvisor(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "A prompt is required", err)
		return
	}

	reportContext, err := h.reportService.ContextFor(c.Param("id"))
	if errors.Is(err, dto.ErrContextNotFound) {
		h.sendError(c, http.StatusNotFound, "Please upload a credit report PDF first.", nil)
		return
	}

	answer, err := h.advisorClient.Ask(c.Request.Context(), reportContext, req.Prompt)
	if errors.Is(err, dto.ErrAdvisorDisabled) {
		h.sendError(c, http.StatusServiceUnavailable, "Advisory chat is not configured", nil)
		return
	}
	if err != nil {
		h.sendError(c, http.StatusBadGateway, "Failed to get advisory response", err)
		return
	}

	c.JSON(http.StatusOK, dto.AskResponse{Answer: answer})
}

// ClearReport handles DELETE /report/:id: drops the stored summary
// context so a fresh upload can start over. Clearing an unknown or
// expired ID is not an error.
func (h *ReportHandler) ClearReport(c *gin.Context) {
	h.reportService.ClearContext(c.Param("id"))
	c.JSON(http.StatusOK, dto.ClearResponse{Message: "Report context cleared."})
}

// sendError sends a structured error response
func (h *ReportHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		h.logger.Warn("request failed", zap.String("message", message), zap.Error(err))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: message,
		Code:    statusCode,
	})
}
