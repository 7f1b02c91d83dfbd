package dto

// AskRequest is the body of POST /report/:id/ask.
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
