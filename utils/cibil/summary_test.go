package cibil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikhilarora068/cibil-analyzer/dto"
)

func strPtr(s string) *string { return &s }

func TestSummaryRendersMetricsAndRatios(t *testing.T) {
	m := dto.CreditMetrics{
		Score:          intPtr(654),
		ScoreDate:      strPtr("15/07/2024"),
		TotalAccounts:  2,
		ActiveAccounts: 1,
		ClosedAccounts: 1,
		CreditCards:    1,
		Loans:          1,
		Accounts: []dto.AccountEntry{
			{Bank: "HDFC BANK", Type: "Credit Card", Status: dto.StatusActive},
			{Bank: "AXIS BANK", Type: "Home Loan", Status: dto.StatusClosed, CloseDate: strPtr("15/03/2020")},
		},
		TotalCreditLimit:        floatPtr(100000),
		TotalOutstandingBalance: floatPtr(30570),
		RecentEnquiries:         intPtr(2),
	}

	out := Summary(m, ComputeRatios(m))
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Key metrics & ratios (CIBIL):", lines[0])
	assert.Contains(t, lines, "Score: 654")
	assert.Contains(t, lines, "Score Date: 15/07/2024")
	assert.Contains(t, lines, "Total Accounts: 2")
	assert.Contains(t, lines, "Detailed Account Information:")
	assert.Contains(t, lines, "  1. HDFC BANK - Credit Card - Status: Active")
	assert.Contains(t, lines, "  2. AXIS BANK - Home Loan - Status: Closed (Closed: 15/03/2020)")
	assert.Contains(t, lines, "Total Credit Limit: 100000")
	assert.Contains(t, lines, "Total Outstanding Balance: 30570")
	assert.Contains(t, lines, "Utilization: 30.57%")
	assert.Contains(t, lines, "Score/900: 72.67%")
	assert.Contains(t, lines, "Max DPD: N/A")
}

func TestSummaryAbsentValues(t *testing.T) {
	out := Summary(dto.CreditMetrics{}, ComputeRatios(dto.CreditMetrics{}))
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines, "Score: N/A")
	assert.Contains(t, lines, "Score Date: N/A")
	assert.Contains(t, lines, "Total Accounts: 0")
	assert.Contains(t, lines, "Utilization: N/A")
	assert.Contains(t, lines, "DPD Flag: N/A")
	assert.NotContains(t, out, "Detailed Account Information")
}

func TestSummaryClosedWithoutDate(t *testing.T) {
	m := dto.CreditMetrics{
		TotalAccounts:  1,
		ClosedAccounts: 1,
		Loans:          1,
		Accounts: []dto.AccountEntry{
			{Bank: "ICICI BANK", Type: "Personal Loan", Status: dto.StatusClosed},
		},
	}

	out := Summary(m, ComputeRatios(m))
	assert.Contains(t, out, "  1. ICICI BANK - Personal Loan - Status: Closed (Closed: Unknown)")
}

func TestSummaryIsDeterministic(t *testing.T) {
	m := dto.CreditMetrics{Score: intPtr(700), TotalAccounts: 1}
	ratios := ComputeRatios(m)

	assert.Equal(t, Summary(m, ratios), Summary(m, ratios))
}
