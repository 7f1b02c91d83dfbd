package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalyzeResponse is the full result of one report analysis. Metrics,
// ratios and recommendations are independent artifacts; Context is the
// flat text block the advisory chat receives verbatim.
type AnalyzeResponse struct {
	ReportID        string        `json:"report_id"`
	Metrics         CreditMetrics `json:"metrics"`
	Ratios          []Ratio       `json:"ratios"`
	Recommendations []string      `json:"recommendations"`
	Context         string        `json:"context"`
	ProcessedAt     string        `json:"processed_at"`
}

// AskResponse carries the advisor's answer for a stored report context.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ClearResponse acknowledges that a stored report context was dropped.
type ClearResponse struct {
	Message string `json:"message"`
}
