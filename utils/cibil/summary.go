package cibil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikhilarora068/cibil-analyzer/dto"
	"github.com/nikhilarora068/cibil-analyzer/utils"
)

const absentValue = "N/A"

// Summary renders the metrics and ratios as a flat, deterministic block
// of text: metrics in record insertion order, then the ratios in their
// fixed order. The block is handed verbatim to the advisory chat as
// grounding context, so the field labels and layout are part of the
// contract.
func Summary(m dto.CreditMetrics, ratios []dto.Ratio) string {
	lines := []string{"Key metrics & ratios (CIBIL):"}

	field := func(label, value string) {
		lines = append(lines, label+": "+value)
	}

	field("Score", fmtOptInt(m.Score))
	field("Score Date", fmtOptString(m.ScoreDate))
	field("Total Accounts", strconv.Itoa(m.TotalAccounts))
	field("Active Accounts", strconv.Itoa(m.ActiveAccounts))
	field("Closed Accounts", strconv.Itoa(m.ClosedAccounts))
	field("Credit Cards", strconv.Itoa(m.CreditCards))
	field("Loans", strconv.Itoa(m.Loans))

	if len(m.Accounts) > 0 {
		lines = append(lines, "", "Detailed Account Information:")
		for i, acc := range m.Accounts {
			entry := fmt.Sprintf("  %d. %s - %s - Status: %s", i+1, acc.Bank, acc.Type, acc.Status)
			if acc.Status == dto.StatusClosed {
				closed := "Unknown"
				if acc.CloseDate != nil {
					closed = *acc.CloseDate
				}
				entry += fmt.Sprintf(" (Closed: %s)", closed)
			}
			lines = append(lines, entry)
		}
	}

	field("Total Credit Limit", fmtOptFloat(m.TotalCreditLimit))
	field("Total Outstanding Balance", fmtOptFloat(m.TotalOutstandingBalance))
	field("Recent Enquiries", fmtOptInt(m.RecentEnquiries))
	field("Max DPD", fmtOptInt(m.MaxDPD))
	field("Late Payments (12m)", fmtOptInt(m.LatePayments12m))
	field("Written-off/Settled Count", fmtOptInt(m.WrittenOffCount))

	lines = append(lines, "", "Ratios:")
	for _, r := range ratios {
		switch r.Name {
		case RatioUtilization, RatioScore:
			field(r.Name, utils.FormatPercent(r.Value))
		default:
			field(r.Name, fmtOptFloat(r.Value))
		}
	}

	return strings.Join(lines, "\n")
}

func fmtOptInt(v *int) string {
	if v == nil {
		return absentValue
	}
	return strconv.Itoa(*v)
}

func fmtOptFloat(v *float64) string {
	if v == nil {
		return absentValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtOptString(v *string) string {
	if v == nil {
		return absentValue
	}
	return *v
}
