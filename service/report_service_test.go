package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nikhilarora068/cibil-analyzer/cache"
	"github.com/nikhilarora068/cibil-analyzer/dto"
	"github.com/nikhilarora068/cibil-analyzer/observability"
)

type stubExtractor struct {
	text string
}

func (s *stubExtractor) Extract(path string) string { return s.text }

const stubReportText = `CIBIL Score
654
: 15/07/2024
HDFC BANK
Credit Card
Credit Limit
1,00,000
Current Balance
30,570
Date Closed
-`

func newReportService(text string) (*ReportService, *cache.InMemory[string]) {
	contexts := cache.New[string](time.Minute)
	svc := NewReportService(&stubExtractor{text: text}, contexts, zap.NewNop(), observability.NewMetrics())
	return svc, contexts
}

func TestAnalyze(t *testing.T) {
	svc, contexts := newReportService(stubReportText)
	defer contexts.Close()

	result, err := svc.Analyze(context.Background(), "report.pdf")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.ReportID)

	assert.NotNil(t, result.Metrics.Score)
	assert.Equal(t, 654, *result.Metrics.Score)
	assert.Equal(t, 1, result.Metrics.TotalAccounts)
	assert.Len(t, result.Ratios, 5)
	assert.Contains(t, result.Recommendations[0], "High utilization")
	assert.Contains(t, result.Context, "Key metrics & ratios (CIBIL):")

	// The summary context is stored for follow-up questions.
	stored, err := svc.ContextFor(result.ReportID)
	assert.NoError(t, err)
	assert.Equal(t, result.Context, stored)
}

func TestAnalyzeNoUsefulData(t *testing.T) {
	svc, contexts := newReportService("nothing a parser could use")
	defer contexts.Close()

	result, err := svc.Analyze(context.Background(), "report.pdf")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dto.ErrNoUsefulData)
}

func TestAnalyzeEmptyExtraction(t *testing.T) {
	svc, contexts := newReportService("")
	defer contexts.Close()

	_, err := svc.Analyze(context.Background(), "report.pdf")
	assert.ErrorIs(t, err, dto.ErrNoUsefulData)
}

func TestClearContext(t *testing.T) {
	svc, contexts := newReportService(stubReportText)
	defer contexts.Close()

	result, err := svc.Analyze(context.Background(), "report.pdf")
	assert.NoError(t, err)

	svc.ClearContext(result.ReportID)

	_, err = svc.ContextFor(result.ReportID)
	assert.ErrorIs(t, err, dto.ErrContextNotFound)

	// Clearing again is harmless.
	svc.ClearContext(result.ReportID)
}

func TestContextForUnknownID(t *testing.T) {
	svc, contexts := newReportService(stubReportText)
	defer contexts.Close()

	_, err := svc.ContextFor("no-such-report")
	assert.ErrorIs(t, err, dto.ErrContextNotFound)
}

func TestAnalyzeDistinctIDs(t *testing.T) {
	svc, contexts := newReportService(stubReportText)
	defer contexts.Close()

	first, err := svc.Analyze(context.Background(), "a.pdf")
	assert.NoError(t, err)
	second, err := svc.Analyze(context.Background(), "b.pdf")
	assert.NoError(t, err)

	assert.NotEqual(t, first.ReportID, second.ReportID)
	assert.Equal(t, 2, contexts.Len())
}
