package cibil

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	scoreSectionMarker = "CIBIL Score"
	// "Control Number" labels reuse the words "CIBIL Score" in some
	// layouts; a marker line carrying it is a false positive.
	scoreSectionExclusion = "Control Number"
	// The section after the score block; reaching it ends the inner scan.
	scoreSectionEnd = "Personal Information"

	scoreWindow = 15
	// Data lines in the score block are short; anything this long is
	// explanatory prose.
	scoreProseLen = 10

	// Section-scoped matches accept the full bureau range. The fallback
	// scan uses a narrower band. The two ranges are intentionally
	// separate constants; do not unify them.
	sectionScoreMin = 300
	sectionScoreMax = 900

	fallbackScoreMin = 600
	fallbackScoreMax = 850

	// garbledFillerDigit completes a two-digit OCR corruption into a
	// 3-digit score. This is a documented approximation, not a decoding
	// of the true digit; it is kept verbatim for compatibility.
	garbledFillerDigit = "4"
)

var (
	// Two visible digits with an optional trailing garbled character,
	// e.g. "6 5A" for what was printed as 654.
	garbledScorePattern = regexp.MustCompile(`^(\d)\s*(\d)\s*[A-Za-z0-9]?\s*$`)

	plainScorePattern = regexp.MustCompile(`^\d{3}$`)

	fallbackScorePattern = regexp.MustCompile(`\b([6-8]\d{2})\b`)

	scoreDatePattern = regexp.MustCompile(`([0-9]{1,2}[/\-][0-9]{1,2}[/\-][0-9]{4})`)
)

// Lines carrying long numeric identifiers that have previously produced
// false-positive scores in the fallback scan.
var fallbackDenylist = []string{
	"Control Number",
	"Account Number",
	"Phone",
	"9748425384",
	"4,743,293,588",
}

// extractScore locates the bureau score: a section-scoped search first,
// then a whole-document numeric scan, attempted only when the section
// marker was seen but yielded nothing.
func extractScore(lines []string) *int {
	score, sectionFound := scoreFromSection(lines)
	if score == nil && sectionFound {
		score = scoreFromFallback(lines)
	}
	return score
}

func scoreFromSection(lines []string) (score *int, sectionFound bool) {
	for i, line := range lines {
		if !strings.Contains(line, scoreSectionMarker) || strings.Contains(line, scoreSectionExclusion) {
			continue
		}
		sectionFound = true

		end := min(i+scoreWindow, len(lines))
		for j := i + 1; j < end; j++ {
			next := strings.TrimSpace(lines[j])
			if strings.Contains(next, scoreSectionEnd) {
				break
			}
			if next == "" || len(next) >= scoreProseLen {
				continue
			}
			if m := garbledScorePattern.FindStringSubmatch(next); m != nil {
				if v, err := strconv.Atoi(m[1] + m[2] + garbledFillerDigit); err == nil {
					return &v, true
				}
			}
			if plainScorePattern.MatchString(next) {
				if v, err := strconv.Atoi(next); err == nil && v >= sectionScoreMin && v <= sectionScoreMax {
					return &v, true
				}
			}
		}
	}
	return nil, sectionFound
}

func scoreFromFallback(lines []string) *int {
	for _, line := range lines {
		if containsAny(line, fallbackDenylist) {
			continue
		}
		for _, m := range fallbackScorePattern.FindAllString(line, -1) {
			v, err := strconv.Atoi(m)
			if err != nil {
				continue
			}
			if v >= fallbackScoreMin && v <= fallbackScoreMax {
				return &v
			}
		}
	}
	return nil
}

// extractScoreDate finds the report date: the first line whose trimmed
// form starts with ": " and carries a slash-separated date. The match is
// passed through as found, never parsed.
func extractScoreDate(lines []string) *string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ": ") || !strings.Contains(trimmed, "/") {
			continue
		}
		if m := scoreDatePattern.FindString(trimmed); m != "" {
			return &m
		}
	}
	return nil
}
