package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nikhilarora068/cibil-analyzer/cache"
	"github.com/nikhilarora068/cibil-analyzer/client"
	"github.com/nikhilarora068/cibil-analyzer/config"
	"github.com/nikhilarora068/cibil-analyzer/handler"
	"github.com/nikhilarora068/cibil-analyzer/observability"
	"github.com/nikhilarora068/cibil-analyzer/service"
)

func main() {
	cfg := config.LoadConfig()

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	// Tesseract v5 reads TESSDATA_PREFIX from the process environment.
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)

	metrics := observability.NewMetrics()

	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	pdfProcessor := service.NewPDFProcessor()
	extractService := service.NewExtractService(pdfProcessor, tesseractClient, logger, metrics)

	contextStore := cache.New[string](cfg.ContextTTL)
	defer contextStore.Close()

	reportService := service.NewReportService(extractService, contextStore, logger, metrics)
	advisorClient := client.NewAdvisorClient(cfg.AdvisorBaseURL, cfg.AdvisorAPIKey, cfg.AdvisorModel, cfg.AdvisorTimeout, logger, metrics)
	reportHandler := handler.NewReportHandler(reportService, advisorClient, logger)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "CIBIL Report Analyzer",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	{
		report := api.Group("/report")
		{
			report.POST("/analyze", reportHandler.AnalyzeReport)
			report.POST("/:id/ask", reportHandler.AskAdvisor)
			report.DELETE("/:id", reportHandler.ClearReport)
		}
	}

	logger.Info("starting CIBIL report analyzer", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
