package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikhilarora068/cibil-analyzer/cache"
	"github.com/nikhilarora068/cibil-analyzer/dto"
	"github.com/nikhilarora068/cibil-analyzer/observability"
	"github.com/nikhilarora068/cibil-analyzer/utils/cibil"
)

// TextExtractor produces the plain text of a document, absorbing all
// acquisition failures into an empty string.
type TextExtractor interface {
	Extract(path string) string
}

// AnalysisResult bundles the three artifacts a caller may render or
// forward independently, plus the stored context ID.
type AnalysisResult struct {
	ReportID        string
	Metrics         dto.CreditMetrics
	Ratios          []dto.Ratio
	Recommendations []string
	Context         string
}

// ReportService runs the full parse-and-compute pipeline for one
// uploaded report and keeps the generated summary context around for
// follow-up advisory questions.
type ReportService struct {
	extractor TextExtractor
	contexts  *cache.InMemory[string]
	logger    *zap.Logger
	metrics   *observability.Metrics
}

func NewReportService(extractor TextExtractor, contexts *cache.InMemory[string], logger *zap.Logger, metrics *observability.Metrics) *ReportService {
	return &ReportService{
		extractor: extractor,
		contexts:  contexts,
		logger:    logger,
		metrics:   metrics,
	}
}

// Analyze converts the document at path into metrics, ratios and
// recommendations. The pipeline is a pure function of the document: the
// same line sequence always yields byte-identical artifacts. The only
// failure it reports is dto.ErrNoUsefulData, when every metric came
// back absent.
func (s *ReportService) Analyze(ctx context.Context, path string) (*AnalysisResult, error) {
	start := time.Now()

	text := s.extractor.Extract(path)
	lines := strings.Split(text, "\n")

	metrics := cibil.Parse(lines)
	if !cibil.HasUsefulData(metrics) {
		s.metrics.IncrReport("no_data")
		s.logger.Warn("nothing extracted from report", zap.String("path", path), zap.Int("lines", len(lines)))
		return nil, dto.ErrNoUsefulData
	}

	ratios := cibil.ComputeRatios(metrics)
	recommendations := cibil.Recommend(metrics, ratios)
	summary := cibil.Summary(metrics, ratios)

	reportID := uuid.NewString()
	s.contexts.Set(reportID, summary)

	s.metrics.IncrReport("ok")
	s.metrics.ObserveAnalysis(time.Since(start))
	s.logger.Info("report analyzed",
		zap.String("report_id", reportID),
		zap.Int("total_accounts", metrics.TotalAccounts),
		zap.Bool("score_found", metrics.Score != nil),
		zap.Duration("took", time.Since(start)))

	return &AnalysisResult{
		ReportID:        reportID,
		Metrics:         metrics,
		Ratios:          ratios,
		Recommendations: recommendations,
		Context:         summary,
	}, nil
}

// ContextFor returns the stored summary context of a prior analysis.
func (s *ReportService) ContextFor(reportID string) (string, error) {
	summary, ok := s.contexts.Get(reportID)
	if !ok {
		return "", dto.ErrContextNotFound
	}
	return summary, nil
}

// ClearContext drops the stored summary context of a prior analysis.
// Clearing an unknown or already-expired ID is a no-op.
func (s *ReportService) ClearContext(reportID string) {
	s.contexts.Delete(reportID)
}
