package cibil

import (
	"strings"

	"github.com/nikhilarora068/cibil-analyzer/utils"
)

const (
	creditLimitLabel = "Credit Limit"
	balanceLabel     = "Current Balance"

	exposureWindow = 5
	// Figures at or below this near a limit label are stray table numbers
	// (fees, day counts), not credit limits. Balances have no floor: a
	// zero balance is real data.
	minPlausibleLimit = 1000
)

// exposure carries the summed credit-limit and balance figures.
//
// The nil conventions are asymmetric on purpose: limit is nil unless the
// sum is positive, while balance is nil only when no balance figure was
// ever matched, so a true zero balance survives as 0.
type exposure struct {
	limit   *float64
	balance *float64
}

// extractExposure sums the figure nearest each credit-limit and balance
// label across the document.
func extractExposure(lines []string) exposure {
	var (
		limitTotal   float64
		balanceTotal float64
		balanceFound bool
	)

	for i, line := range lines {
		if strings.Contains(line, creditLimitLabel) {
			if v, ok := amountNear(lines, i, func(a float64) bool { return a > minPlausibleLimit }); ok {
				limitTotal += v
			}
		}
		if strings.Contains(line, balanceLabel) {
			if v, ok := amountNear(lines, i, func(a float64) bool { return a >= 0 }); ok {
				balanceTotal += v
				balanceFound = true
			}
		}
	}

	var ex exposure
	if limitTotal > 0 {
		ex.limit = &limitTotal
	}
	if balanceFound {
		ex.balance = &balanceTotal
	}
	return ex
}

// amountNear applies the shared label→nearby-value lookahead with a
// numeric acceptance predicate.
func amountNear(lines []string, labelIdx int, accept func(float64) bool) (float64, bool) {
	var amount float64
	_, _, ok := utils.ScanAhead(lines, labelIdx, exposureWindow, func(s string) bool {
		v := utils.ToFloat(s)
		if v == nil || !accept(*v) {
			return false
		}
		amount = *v
		return true
	})
	return amount, ok
}
