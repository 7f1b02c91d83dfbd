package cibil

import (
	"regexp"
	"strings"
)

const (
	enquirySectionMarker = "Enquiry Information"
	enquiryHeaderMarker  = "Date of Enquiry"
	enquiryWindow        = 10
)

var (
	enquiryDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)

	// Lines that terminate the enquiry date column.
	enquiryTerminators = []string{"Credit Report", "Enquiry Purpose"}
)

// extractEnquiries counts recent-enquiry date rows under the enquiry
// section's date column header. Returns nil when zero were counted: an
// empty column is indistinguishable from a missing section, and both
// mean "no data" downstream.
func extractEnquiries(lines []string) *int {
	inSection := false
	for i, line := range lines {
		switch {
		case strings.Contains(line, enquirySectionMarker):
			inSection = true

		case inSection && strings.Contains(line, enquiryHeaderMarker):
			count := 0
			end := min(i+enquiryWindow, len(lines))
			for j := i + 1; j < end; j++ {
				next := strings.TrimSpace(lines[j])
				if enquiryDatePattern.MatchString(next) {
					count++
				} else if containsAny(next, enquiryTerminators) {
					break
				}
			}
			if count > 0 {
				return &count
			}
			return nil
		}
	}
	return nil
}
