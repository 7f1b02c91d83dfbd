package cibil

import "github.com/nikhilarora068/cibil-analyzer/dto"

// Advisory thresholds. Utilization is an exclusive bound: exactly 30%
// does not warn.
const (
	highUtilizationThreshold = 0.30
	lowScoreThreshold        = 650
	enquiryWarningCount      = 4
)

// Recommend applies the fixed advisory rule set to the extracted metrics
// and computed ratios. Every rule is evaluated independently; no rule
// suppresses another, and the output order is rule-declaration order,
// not severity.
func Recommend(m dto.CreditMetrics, ratios []dto.Ratio) []string {
	var util *float64
	for _, r := range ratios {
		if r.Name == RatioUtilization {
			util = r.Value
		}
	}

	recs := []string{}

	if util != nil && *util > highUtilizationThreshold {
		recs = append(recs, "High utilization (>30%): pay down revolving balances to improve score.")
	}
	if m.Score != nil && *m.Score < lowScoreThreshold {
		recs = append(recs, "Score below 650: maintain on-time payments for 6 months and avoid new credit.")
	}
	if m.RecentEnquiries != nil && *m.RecentEnquiries >= enquiryWarningCount {
		recs = append(recs, "Multiple recent enquiries: pause new applications to reduce credit-hunger flags.")
	}
	if (m.MaxDPD != nil && *m.MaxDPD > 0) || (m.LatePayments12m != nil && *m.LatePayments12m > 0) {
		recs = append(recs, "Delinquencies detected: clear overdue/DPD and enable autopay.")
	}
	if m.WrittenOffCount != nil && *m.WrittenOffCount != 0 {
		recs = append(recs, "History of written-off/settled: obtain closure letters and rebuild with a secured card.")
	}

	return recs
}
