package service

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/nikhilarora068/cibil-analyzer/observability"
)

// OCRClient turns a rendered page image file into text.
type OCRClient interface {
	ExtractTextFromImage(filePath string) (string, error)
}

// minNativeTextLen is the scanned-document heuristic: a native text
// layer shorter than this means the PDF is an image scan and the OCR
// path should run.
const minNativeTextLen = 100

// ExtractService is the text extraction adapter: given a document path
// it produces the plain text the parser scans, preferring the native
// text layer, falling back to OCR, then to span reassembly.
type ExtractService struct {
	pdf     PDFProcessor
	ocr     OCRClient
	logger  *zap.Logger
	metrics *observability.Metrics
}

func NewExtractService(pdf PDFProcessor, ocr OCRClient, logger *zap.Logger, metrics *observability.Metrics) *ExtractService {
	return &ExtractService{
		pdf:     pdf,
		ocr:     ocr,
		logger:  logger,
		metrics: metrics,
	}
}

// Extract produces the text for one report document. It never fails past
// this boundary: any acquisition problem degrades to an empty string,
// which the parser treats as "no data" rather than an error.
func (s *ExtractService) Extract(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("report unreadable", zap.String("path", path), zap.Error(err))
		s.metrics.IncrExtractionPath("unreadable")
		return ""
	}

	native, err := s.pdf.ExtractText(data)
	if err != nil {
		s.logger.Warn("native text extraction failed", zap.Error(err))
		native = ""
	}
	if len(strings.TrimSpace(native)) >= minNativeTextLen {
		s.metrics.IncrExtractionPath("native")
		return native
	}

	s.logger.Info("native text layer is sparse, treating document as scanned",
		zap.Int("native_len", len(strings.TrimSpace(native))))

	if ocrText := s.ocrPageImages(data); strings.TrimSpace(ocrText) != "" {
		s.metrics.IncrExtractionPath("ocr")
		return ocrText
	}

	// Span reassembly recovers some broken-layout documents, but only
	// keep it when it actually found more than the native pass did.
	spans, err := s.pdf.ExtractTextSpans(data)
	if err == nil && len(spans) > len(native) {
		s.metrics.IncrExtractionPath("spans")
		return spans
	}

	// Labelled apart from the healthy native path: landing here means
	// every fallback failed and a sparse text layer is all we have.
	s.metrics.IncrExtractionPath("native_sparse")
	return native
}

// ocrPageImages extracts the page images of a scanned PDF and OCRs each
// one, joining page texts with newlines. Per-page failures are skipped.
func (s *ExtractService) ocrPageImages(data []byte) string {
	images, err := s.pdf.ExtractImages(data)
	if err != nil || len(images) == 0 {
		s.logger.Warn("page image extraction failed", zap.Int("images", len(images)), zap.Error(err))
		return ""
	}

	var combined strings.Builder
	for i, img := range images {
		tmp, err := saveImageToTempFile(img)
		if err != nil {
			s.logger.Warn("failed to stage page image for OCR", zap.Int("page", i), zap.Error(err))
			continue
		}

		pageText, err := s.ocr.ExtractTextFromImage(tmp)
		os.Remove(tmp)
		if err != nil {
			s.logger.Warn("page OCR failed", zap.Int("page", i), zap.Error(err))
			continue
		}

		combined.WriteString(pageText)
		combined.WriteString("\n")
	}
	return combined.String()
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
