package cibil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikhilarora068/cibil-analyzer/dto"
)

func TestRecommendUtilizationBoundaryIsExclusive(t *testing.T) {
	// Exactly 30% does not warn.
	m := dto.CreditMetrics{
		TotalCreditLimit:        floatPtr(100000),
		TotalOutstandingBalance: floatPtr(30000),
	}
	recs := Recommend(m, ComputeRatios(m))
	assert.Empty(t, recs)

	m.TotalOutstandingBalance = floatPtr(30570)
	recs = Recommend(m, ComputeRatios(m))
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "High utilization")
}

func TestRecommendLowScore(t *testing.T) {
	m := dto.CreditMetrics{Score: intPtr(649)}
	recs := Recommend(m, ComputeRatios(m))
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Score below 650")

	// 650 itself is fine.
	m.Score = intPtr(650)
	assert.Empty(t, Recommend(m, ComputeRatios(m)))
}

func TestRecommendEnquiries(t *testing.T) {
	m := dto.CreditMetrics{RecentEnquiries: intPtr(3)}
	assert.Empty(t, Recommend(m, ComputeRatios(m)))

	m.RecentEnquiries = intPtr(4)
	recs := Recommend(m, ComputeRatios(m))
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Multiple recent enquiries")
}

func TestRecommendDelinquencies(t *testing.T) {
	m := dto.CreditMetrics{MaxDPD: intPtr(30)}
	recs := Recommend(m, ComputeRatios(m))
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Delinquencies detected")

	m = dto.CreditMetrics{LatePayments12m: intPtr(2)}
	recs = Recommend(m, ComputeRatios(m))
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Delinquencies detected")

	// Present-but-zero values do not flag.
	m = dto.CreditMetrics{MaxDPD: intPtr(0), LatePayments12m: intPtr(0)}
	assert.Empty(t, Recommend(m, ComputeRatios(m)))
}

func TestRecommendWrittenOff(t *testing.T) {
	m := dto.CreditMetrics{WrittenOffCount: intPtr(1)}
	recs := Recommend(m, ComputeRatios(m))
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "written-off/settled")
}

func TestRecommendRulesAreIndependent(t *testing.T) {
	m := dto.CreditMetrics{
		Score:                   intPtr(600),
		TotalCreditLimit:        floatPtr(100000),
		TotalOutstandingBalance: floatPtr(90000),
		RecentEnquiries:         intPtr(6),
		MaxDPD:                  intPtr(60),
		WrittenOffCount:         intPtr(2),
	}

	recs := Recommend(m, ComputeRatios(m))
	assert.Len(t, recs, 5)

	// Output order is rule order, not severity.
	assert.True(t, strings.HasPrefix(recs[0], "High utilization"))
	assert.True(t, strings.HasPrefix(recs[1], "Score below 650"))
}

func TestRecommendNoDataNoAdvice(t *testing.T) {
	m := dto.CreditMetrics{}
	recs := Recommend(m, ComputeRatios(m))
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}
