package cibil

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/nikhilarora068/cibil-analyzer/dto"
	"github.com/nikhilarora068/cibil-analyzer/utils"
)

// Institution vocabulary. Order is significant: when one line names
// several institutions, the earliest entry here wins.
var institutionVocab = []string{
	"CITIBANK", "HDFC BANK", "CREDILA", "KOTAK BANK", "ICICI BANK",
	"SBI", "AXIS BANK", "STANDARD CHARTERED", "AMERICAN EXPRESS",
	"YES BANK", "INDUSIND BANK", "BAJAJ", "TATA CAPITAL", "HSBC",
}

var institutionMatcher = ahocorasick.NewStringMatcher(institutionVocab)

// Account-type vocabulary, matched case-sensitively as printed by the
// bureau layout.
var accountTypeVocab = []string{
	"Credit Card", "Education Loan", "Personal Loan", "Home Loan",
	"Auto Loan", "Two Wheeler Loan", "Business Loan", "Gold Loan",
}

var closureKeywords = []string{"CLOSED", "SETTLED", "WRITTEN OFF"}

const (
	accountTypeWindow = 10
	closureWindow     = 50
	closeDateLabel    = "Date Closed"
	// How far past the end of a consumed account block the scan pointer
	// jumps, so the same logical record is not detected twice.
	consumedBlockSkip = 5

	creditCardType = "Credit Card"
)

// ledger is the account inventory plus its aggregate counters.
type ledger struct {
	accounts    []dto.AccountEntry
	active      int
	closed      int
	creditCards int
	loans       int
}

// extractAccounts scans the line sequence for institution names and
// assembles the account inventory. The scan is pointer-based: a matched
// account consumes its whole block, not just the institution line.
func extractAccounts(lines []string) ledger {
	var lg ledger

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		bank, ok := matchInstitution(line)
		if !ok {
			i++
			continue
		}

		accountType, ok := findAccountType(lines, i)
		if !ok {
			// An institution name with no recognizable account type
			// nearby is noise (letterheads, enquiry rows). Precision
			// over recall: skip it.
			i++
			continue
		}

		status, closeDate, scanEnd := findClosure(lines, i)

		if status == dto.StatusClosed {
			lg.closed++
		} else {
			lg.active++
		}
		if strings.Contains(accountType, creditCardType) {
			lg.creditCards++
		} else {
			lg.loans++
		}

		lg.accounts = append(lg.accounts, dto.AccountEntry{
			Bank:      bank,
			Type:      accountType,
			Status:    status,
			CloseDate: closeDate,
		})

		i = scanEnd + consumedBlockSkip
	}

	return lg
}

// matchInstitution tests a line against the institution vocabulary,
// case-insensitively. Ties resolve to the lowest vocabulary index.
// The matcher is a shared package-level singleton scanned by concurrent
// parses, so only the thread-safe entry point may be used; plain Match
// mutates matcher state.
func matchInstitution(line string) (string, bool) {
	hits := institutionMatcher.MatchThreadSafe([]byte(strings.ToUpper(line)))
	if len(hits) == 0 {
		return "", false
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h < best {
			best = h
		}
	}
	return institutionVocab[best], true
}

// findAccountType looks ahead from the institution line for a known
// account-type token. Vocabulary order breaks ties within a line.
func findAccountType(lines []string, start int) (string, bool) {
	end := min(start+accountTypeWindow, len(lines))
	for j := start + 1; j < end; j++ {
		next := strings.TrimSpace(lines[j])
		for _, t := range accountTypeVocab {
			if strings.Contains(next, t) {
				return t, true
			}
		}
	}
	return "", false
}

// findClosure scans from the institution line for a closure signal:
// either a "Date Closed" label whose next line holds a real date, or a
// closure keyword. A placeholder date line is not a closure; scanning
// continues past it. scanEnd is the index where the scan stopped, which
// the caller uses to advance past the consumed block.
func findClosure(lines []string, start int) (status dto.AccountStatus, closeDate *string, scanEnd int) {
	status = dto.StatusActive
	end := min(start+closureWindow, len(lines))
	scanEnd = end - 1

	for j := start; j < end; j++ {
		statusLine := strings.TrimSpace(lines[j])

		if strings.Contains(statusLine, closeDateLabel) {
			if j+1 < len(lines) {
				dateLine := strings.TrimSpace(lines[j+1])
				if dateLine != "" && dateLine != utils.ValuePlaceholder && strings.Contains(dateLine, "/") {
					status = dto.StatusClosed
					closeDate = &dateLine
					scanEnd = j
					return status, closeDate, scanEnd
				}
			}
			// NB: "Date Closed" itself contains "CLOSED"; the keyword
			// branch must not see label lines.
			continue
		}

		if containsAny(strings.ToUpper(statusLine), closureKeywords) {
			status = dto.StatusClosed
			scanEnd = j
			return status, closeDate, scanEnd
		}
	}

	return status, closeDate, scanEnd
}
