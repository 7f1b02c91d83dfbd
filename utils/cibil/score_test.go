package cibil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractScoreFromSection(t *testing.T) {
	lines := []string{
		"CIBIL Score",
		"the score below reflects your credit history",
		"654",
	}

	score := extractScore(lines)
	assert.NotNil(t, score)
	assert.Equal(t, 654, *score)
}

func TestExtractScoreGarbledReconstruction(t *testing.T) {
	// OCR mangled the third digit; the first two are reconstructed with
	// the fixed filler.
	lines := []string{"CIBIL Score", "6 5A"}

	score := extractScore(lines)
	assert.NotNil(t, score)
	assert.Equal(t, 654, *score)
}

func TestExtractScoreIgnoresControlNumberMarker(t *testing.T) {
	lines := []string{
		"Control Number for CIBIL Score request",
		"654",
	}

	assert.Nil(t, extractScore(lines))
}

func TestExtractScoreSectionEndsAtPersonalInformation(t *testing.T) {
	// 554 is inside the section range but outside the fallback range, so
	// once the section boundary cuts the scan off it stays lost.
	lines := []string{"CIBIL Score", "Personal Information", "554"}
	assert.Nil(t, extractScore(lines))

	lines = []string{"CIBIL Score", "554"}
	score := extractScore(lines)
	assert.NotNil(t, score)
	assert.Equal(t, 554, *score)
}

func TestExtractScoreFallbackRequiresSectionMarker(t *testing.T) {
	// A plausible score with no section marker anywhere is not trusted.
	lines := []string{"some header", "723", "some footer"}
	assert.Nil(t, extractScore(lines))

	// With the marker present but the section empty, the fallback scan
	// picks it up.
	lines = []string{"CIBIL Score", "Personal Information", "member id 723"}
	score := extractScore(lines)
	assert.NotNil(t, score)
	assert.Equal(t, 723, *score)
}

func TestExtractScoreFallbackDenylist(t *testing.T) {
	lines := []string{
		"CIBIL Score",
		"Personal Information",
		"Control Number 4,743,293,588",
		"Account Number 654321",
		"Phone 9748425384",
	}

	assert.Nil(t, extractScore(lines))
}

func TestExtractScoreFallbackRange(t *testing.T) {
	// 890 passes the section range but not the fallback band [600,850].
	lines := []string{"CIBIL Score", "Personal Information", "value 890 here"}
	assert.Nil(t, extractScore(lines))
}

func TestExtractScoreDate(t *testing.T) {
	lines := []string{"CIBIL Score", "654", ": 15/07/2024"}

	date := extractScoreDate(lines)
	assert.NotNil(t, date)
	assert.Equal(t, "15/07/2024", *date)
}

func TestExtractScoreDateRequiresColonPrefix(t *testing.T) {
	assert.Nil(t, extractScoreDate([]string{"Date 15/07/2024"}))
	assert.Nil(t, extractScoreDate([]string{": 15-07-2024"}))
}
