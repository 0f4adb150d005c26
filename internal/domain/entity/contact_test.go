// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"
)

func transactionDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestContactMatchesName(t *testing.T) {
	contact := NewContact("Acme Corp", []string{"Acme", "ACME Inc"})

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact name", "Acme Corp", true},
		{"case-insensitive name", "acme corp", true},
		{"alias", "acme", true},
		{"alias with different casing", "ACME INC", true},
		{"surrounding whitespace", "  Acme Corp  ", true},
		{"unrelated name", "Globex", false},
		{"partial name", "Acme Co", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contact.MatchesName(tt.input); got != tt.want {
				t.Errorf("MatchesName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewContactZeroesAggregates(t *testing.T) {
	contact := NewContact("Globex", nil)

	if !contact.TotalSpent.IsZero() || !contact.TotalReceived.IsZero() {
		t.Error("expected zeroed totals on a new contact")
	}
	if contact.TransactionCount != 0 {
		t.Errorf("TransactionCount = %d, want 0", contact.TransactionCount)
	}
}
