// Package parse contains the natural language parsing use case.
package parse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ReviewConfidenceThreshold marks candidates below it for review.
const ReviewConfidenceThreshold = 0.7

// ErrParserUnavailable is returned when no parser is configured.
var ErrParserUnavailable = errors.New("parser is not configured")

// ErrEmptyParseText is returned when the input text is empty.
var ErrEmptyParseText = errors.New("text to parse is required")

// ParseTextInput represents the input for text parsing.
type ParseTextInput struct {
	Text string
}

// ParsedCandidate is one candidate transaction with review annotations.
type ParsedCandidate struct {
	Candidate             *adapter.CandidateTransaction
	NeedsReview           bool
	ReviewReason          *entity.ReviewReason
	PotentialDuplicateIDs []uuid.UUID
}

// ParseTextOutput represents the output of text parsing.
type ParseTextOutput struct {
	Candidates []*ParsedCandidate
}

// ParseTextUseCase sends free-form text plus read-only ledger context
// to the parser and annotates the candidates it returns. Parsing never
// writes; the caller decides what to persist via bulk creation.
type ParseTextUseCase struct {
	parser          adapter.ParserService
	contactRepo     adapter.ContactRepository
	categoryRepo    adapter.CategoryRepository
	projectRepo     adapter.ProjectRepository
	transactionRepo adapter.TransactionRepository
}

// NewParseTextUseCase creates a new ParseTextUseCase instance.
func NewParseTextUseCase(
	parser adapter.ParserService,
	contactRepo adapter.ContactRepository,
	categoryRepo adapter.CategoryRepository,
	projectRepo adapter.ProjectRepository,
	transactionRepo adapter.TransactionRepository,
) *ParseTextUseCase {
	return &ParseTextUseCase{
		parser:          parser,
		contactRepo:     contactRepo,
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the parse. A failed parse writes nothing and the
// ledger state is unaffected.
func (uc *ParseTextUseCase) Execute(ctx context.Context, input ParseTextInput) (*ParseTextOutput, error) {
	if input.Text == "" {
		return nil, ErrEmptyParseText
	}
	if !uc.parser.IsAvailable() {
		return nil, ErrParserUnavailable
	}

	request, err := uc.buildRequest(ctx, input.Text)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.parser.ParseText(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text: %w", err)
	}

	annotated := make([]*ParsedCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		parsed := &ParsedCandidate{Candidate: candidate}

		switch {
		case candidate.Amount.IsZero() || candidate.Date == "":
			parsed.NeedsReview = true
			reason := entity.ReviewReasonIncomplete
			parsed.ReviewReason = &reason
		case candidate.Confidence < ReviewConfidenceThreshold:
			parsed.NeedsReview = true
			reason := entity.ReviewReasonLowConfidence
			parsed.ReviewReason = &reason
		default:
			duplicates, err := uc.findPotentialDuplicates(ctx, candidate)
			if err != nil {
				return nil, err
			}
			if len(duplicates) > 0 {
				parsed.NeedsReview = true
				reason := entity.ReviewReasonPotentialDuplicate
				parsed.ReviewReason = &reason
				parsed.PotentialDuplicateIDs = duplicates
			}
		}

		annotated = append(annotated, parsed)
	}

	return &ParseTextOutput{
		Candidates: annotated,
	}, nil
}

// buildRequest collects the read-only ledger context the parser needs
// to map names onto existing entities.
func (uc *ParseTextUseCase) buildRequest(ctx context.Context, text string) (*adapter.ParseRequest, error) {
	contacts, err := uc.contactRepo.FindAll(ctx, adapter.ContactFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts for parsing: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx, adapter.CategoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for parsing: %w", err)
	}
	projects, err := uc.projectRepo.FindAll(ctx, adapter.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load projects for parsing: %w", err)
	}

	request := &adapter.ParseRequest{Text: text}
	for _, c := range contacts {
		request.Contacts = append(request.Contacts, adapter.ParseContactContext{
			ID:      c.ID,
			Name:    c.Name,
			Aliases: c.Aliases,
		})
	}
	for _, c := range categories {
		request.Categories = append(request.Categories, adapter.ParseCategoryContext{
			ID:   c.ID,
			Name: c.Name,
			Type: c.Type,
		})
	}
	for _, p := range projects {
		request.Projects = append(request.Projects, adapter.ParseProjectContext{
			ID:   p.ID,
			Name: p.Name,
		})
	}
	return request, nil
}

// findPotentialDuplicates looks for stored transactions with the same
// type and amount on the candidate's date.
func (uc *ParseTextUseCase) findPotentialDuplicates(ctx context.Context, candidate *adapter.CandidateTransaction) ([]uuid.UUID, error) {
	if candidate.Date == "" {
		return nil, nil
	}
	day, err := time.Parse("2006-01-02", candidate.Date)
	if err != nil {
		return nil, nil
	}

	start := day
	end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	result, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		Type:      &candidate.Type,
		MinAmount: &candidate.Amount,
		MaxAmount: &candidate.Amount,
		StartDate: &start,
		EndDate:   &end,
	}, adapter.TransactionPage{Limit: 20})
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicates: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(result.Transactions))
	for _, txn := range result.Transactions {
		ids = append(ids, txn.Transaction.ID)
	}
	return ids, nil
}
