// Package cibil turns the flat line sequence extracted from a CIBIL
// credit report into typed financial facts, and derives risk ratios and
// advisory text from them.
//
// Every extractor is a pure pass over an immutable []string: bad or empty
// input yields absent facts, never errors. The layout assumptions are
// specific to one bureau's semi-fixed format and tolerate, rather than
// correct, OCR noise.
package cibil

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nikhilarora068/cibil-analyzer/dto"
)

// Parse runs the four extraction passes over the line sequence and
// assembles the metrics record. The passes are independent scans of the
// same immutable slice, so they run concurrently; all complete before
// the record is assembled.
func Parse(lines []string) dto.CreditMetrics {
	var (
		score     *int
		scoreDate *string
		lg        ledger
		ex        exposure
		enquiries *int
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		score = extractScore(lines)
		scoreDate = extractScoreDate(lines)
		return nil
	})
	g.Go(func() error {
		lg = extractAccounts(lines)
		return nil
	})
	g.Go(func() error {
		ex = extractExposure(lines)
		return nil
	})
	g.Go(func() error {
		enquiries = extractEnquiries(lines)
		return nil
	})
	// The passes absorb bad input as absent facts; none can fail.
	_ = g.Wait()

	return dto.CreditMetrics{
		Score:                   score,
		ScoreDate:               scoreDate,
		TotalAccounts:           len(lg.accounts),
		ActiveAccounts:          lg.active,
		ClosedAccounts:          lg.closed,
		CreditCards:             lg.creditCards,
		Loans:                   lg.loans,
		Accounts:                lg.accounts,
		TotalCreditLimit:        ex.limit,
		TotalOutstandingBalance: ex.balance,
		RecentEnquiries:         enquiries,
	}
}

// ParseText splits extracted document text into its line sequence and
// parses it. The split on "\n" is the only structure the pipeline
// assumes about the text.
func ParseText(text string) dto.CreditMetrics {
	return Parse(strings.Split(text, "\n"))
}

// HasUsefulData reports whether any extraction pass produced a fact.
// When it is false the caller should surface a corrective message
// instead of an empty report.
func HasUsefulData(m dto.CreditMetrics) bool {
	return m.Score != nil ||
		m.ScoreDate != nil ||
		m.TotalAccounts > 0 ||
		m.TotalCreditLimit != nil ||
		m.TotalOutstandingBalance != nil ||
		m.RecentEnquiries != nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
