// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GeminiParser implements the ParserService using Google Gemini.
type GeminiParser struct {
	apiKey    string
	modelName string
}

// NewGeminiParser creates a new Gemini parser instance.
func NewGeminiParser(apiKey, modelName string) *GeminiParser {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiParser{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini parser is properly configured.
func (s *GeminiParser) IsAvailable() bool {
	return s.apiKey != ""
}

// ParseText extracts candidate transactions from free-form text.
func (s *GeminiParser) ParseText(ctx context.Context, request *adapter.ParseRequest) ([]*adapter.CandidateTransaction, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini parser is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	candidates, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return candidates, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiParser) buildPrompt(request *adapter.ParseRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a financial transaction extraction assistant for a personal and small-business ledger. Your task is to extract every transaction mentioned in the text below.

For each transaction you must determine:
1. The amount (a positive number) and currency (INR or USD; default INR when not stated)
2. The type: "expense" when money goes out, "income" when money comes in
3. The date in YYYY-MM-DD format, or empty string when the text carries no date
4. The contact name (the person or business money flowed to or from), when mentioned
5. The best matching category id from the known categories, or null
6. The best matching project id from the known projects, or null
7. A short description
8. A confidence score between 0.0 and 1.0 for the extraction as a whole

RULES:
- Never invent amounts, dates or names that are not in the text
- Match contact names against the known contacts and their aliases; still return the name as written in the text
- Only use category and project ids from the lists below; use null when unsure
- Lower the confidence when the text is ambiguous or fields are missing

KNOWN CONTACTS:
`)

	if len(request.Contacts) > 0 {
		for _, c := range request.Contacts {
			sb.WriteString(fmt.Sprintf("- Name: %s", c.Name))
			if len(c.Aliases) > 0 {
				sb.WriteString(fmt.Sprintf(", Aliases: %s", strings.Join(c.Aliases, ", ")))
			}
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("(No known contacts)\n")
	}

	sb.WriteString("\nKNOWN CATEGORIES:\n")
	if len(request.Categories) > 0 {
		for _, c := range request.Categories {
			sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s, Type: %s\n", c.ID, c.Name, c.Type))
		}
	} else {
		sb.WriteString("(No known categories)\n")
	}

	sb.WriteString("\nKNOWN PROJECTS:\n")
	if len(request.Projects) > 0 {
		for _, p := range request.Projects {
			sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s\n", p.ID, p.Name))
		}
	} else {
		sb.WriteString("(No known projects)\n")
	}

	sb.WriteString("\nTEXT TO PARSE:\n")
	sb.WriteString(request.Text)

	sb.WriteString(`

Respond with a JSON array of extracted transactions. Each entry must have:
{
  "amount": "123.45",
  "currency": "INR" | "USD",
  "type": "expense" | "income",
  "date": "YYYY-MM-DD or empty string",
  "contact_name": "name as written, or empty string",
  "category_id": "uuid from the known categories or null",
  "project_id": "uuid from the known projects or null",
  "description": "short description",
  "confidence": 0.0-1.0
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// geminiCandidate represents the raw response entry from Gemini.
type geminiCandidate struct {
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	ContactName string  `json:"contact_name"`
	CategoryID  *string `json:"category_id"`
	ProjectID   *string `json:"project_id"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// parseResponse parses the Gemini response into candidate transactions.
func (s *GeminiParser) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.CandidateTransaction, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw []geminiCandidate
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	candidates := make([]*adapter.CandidateTransaction, 0, len(raw))
	for _, rc := range raw {
		amount, err := decimal.NewFromString(rc.Amount)
		if err != nil {
			continue // Skip entries with unparseable amounts
		}

		currency := entity.Currency(strings.ToUpper(rc.Currency))
		if !entity.IsValidCurrency(currency) {
			currency = entity.BaseCurrency
		}

		transactionType := entity.TransactionType(rc.Type)
		if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
			transactionType = entity.TransactionTypeExpense
		}

		candidate := &adapter.CandidateTransaction{
			Amount:      amount,
			Currency:    currency,
			Type:        transactionType,
			Date:        rc.Date,
			ContactName: strings.TrimSpace(rc.ContactName),
			Description: rc.Description,
			Confidence:  rc.Confidence,
		}

		if rc.CategoryID != nil && *rc.CategoryID != "" {
			if id, err := uuid.Parse(*rc.CategoryID); err == nil {
				candidate.CategoryID = &id
			}
		}
		if rc.ProjectID != nil && *rc.ProjectID != "" {
			if id, err := uuid.Parse(*rc.ProjectID); err == nil {
				candidate.ProjectID = &id
			}
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
