// Package dto defines data transfer objects for API requests and responses.
package dto

// ParseTextRequest represents the request body for text parsing.
type ParseTextRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// ParsedCandidateResponse is one candidate transaction suggestion.
type ParsedCandidateResponse struct {
	Amount                string   `json:"amount"`
	Currency              string   `json:"currency"`
	Type                  string   `json:"type"`
	Date                  string   `json:"date,omitempty"`
	ContactName           string   `json:"contactName,omitempty"`
	CategoryID            *string  `json:"categoryId,omitempty"`
	ProjectID             *string  `json:"projectId,omitempty"`
	Description           string   `json:"description,omitempty"`
	Confidence            float64  `json:"confidence"`
	NeedsReview           bool     `json:"needsReview"`
	ReviewReason          *string  `json:"reviewReason,omitempty"`
	PotentialDuplicateIDs []string `json:"potentialDuplicateIds,omitempty"`
}

// ParseTextResponse represents the response of a parse run.
type ParseTextResponse struct {
	Candidates []ParsedCandidateResponse `json:"candidates"`
}
