package dto

import "errors"

var (
	// ErrNoUsefulData is returned when a parse completed but every metric
	// came back absent. It is the only pipeline failure a caller sees;
	// everything else degrades to absent fields.
	ErrNoUsefulData = errors.New("no CIBIL data could be extracted from the document")

	// ErrContextNotFound means the report ID has no stored summary
	// context (never uploaded, or expired).
	ErrContextNotFound = errors.New("report context not found")

	// ErrAdvisorDisabled means no advisor API key is configured.
	ErrAdvisorDisabled = errors.New("advisory chat is not configured")
)
