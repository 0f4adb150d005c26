// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/parse"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// ParseController handles natural language parsing endpoints.
type ParseController struct {
	parseUseCase *parse.ParseTextUseCase
}

// NewParseController creates a new parse controller instance.
func NewParseController(parseUseCase *parse.ParseTextUseCase) *ParseController {
	return &ParseController{
		parseUseCase: parseUseCase,
	}
}

// ParseText handles POST /parse requests. Parsing writes nothing; the
// client submits accepted candidates through the bulk creation
// endpoint.
func (c *ParseController) ParseText(ctx *gin.Context) {
	var req dto.ParseTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "INVALID_BODY", "Invalid request body")
		return
	}

	output, err := c.parseUseCase.Execute(ctx.Request.Context(), parse.ParseTextInput{Text: req.Text})
	if err != nil {
		if errors.Is(err, parse.ErrParserUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("PARSER_UNAVAILABLE", err.Error()))
			return
		}
		respondError(ctx, err)
		return
	}

	response := dto.ParseTextResponse{
		Candidates: make([]dto.ParsedCandidateResponse, len(output.Candidates)),
	}
	for i, parsed := range output.Candidates {
		candidate := dto.ParsedCandidateResponse{
			Amount:      parsed.Candidate.Amount.String(),
			Currency:    string(parsed.Candidate.Currency),
			Type:        string(parsed.Candidate.Type),
			Date:        parsed.Candidate.Date,
			ContactName: parsed.Candidate.ContactName,
			Description: parsed.Candidate.Description,
			Confidence:  parsed.Candidate.Confidence,
			NeedsReview: parsed.NeedsReview,
		}
		if parsed.Candidate.CategoryID != nil {
			id := parsed.Candidate.CategoryID.String()
			candidate.CategoryID = &id
		}
		if parsed.Candidate.ProjectID != nil {
			id := parsed.Candidate.ProjectID.String()
			candidate.ProjectID = &id
		}
		if parsed.ReviewReason != nil {
			reason := string(*parsed.ReviewReason)
			candidate.ReviewReason = &reason
		}
		for _, duplicateID := range parsed.PotentialDuplicateIDs {
			candidate.PotentialDuplicateIDs = append(candidate.PotentialDuplicateIDs, duplicateID.String())
		}
		response.Candidates[i] = candidate
	}

	ctx.JSON(http.StatusOK, response)
}
