// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToBaseCurrency(t *testing.T) {
	t.Run("INR passes through unchanged", func(t *testing.T) {
		amount := decimal.NewFromInt(500)
		got := ToBaseCurrency(amount, CurrencyINR)
		if !got.Equal(amount) {
			t.Errorf("ToBaseCurrency(500, INR) = %s, want 500", got)
		}
	})

	t.Run("USD converts at the fixed rate", func(t *testing.T) {
		got := ToBaseCurrency(decimal.NewFromInt(10), CurrencyUSD)
		if !got.Equal(decimal.NewFromInt(830)) {
			t.Errorf("ToBaseCurrency(10, USD) = %s, want 830", got)
		}
	})

	t.Run("fractional USD amounts keep precision", func(t *testing.T) {
		got := ToBaseCurrency(decimal.RequireFromString("1.50"), CurrencyUSD)
		if !got.Equal(decimal.RequireFromString("124.5")) {
			t.Errorf("ToBaseCurrency(1.50, USD) = %s, want 124.5", got)
		}
	})
}

func TestIsValidCurrency(t *testing.T) {
	if !IsValidCurrency(CurrencyINR) || !IsValidCurrency(CurrencyUSD) {
		t.Error("expected INR and USD to be valid")
	}
	if IsValidCurrency("EUR") {
		t.Error("expected EUR to be rejected")
	}
}

func TestNewTransactionDerivesBaseAmount(t *testing.T) {
	transaction := NewTransaction(
		decimal.NewFromInt(20),
		CurrencyUSD,
		TransactionTypeExpense,
		transactionDate(t),
		nil, nil, nil,
		"cloud hosting", "",
	)

	if !transaction.AmountInBaseCurrency.Equal(decimal.NewFromInt(1660)) {
		t.Errorf("AmountInBaseCurrency = %s, want 1660", transaction.AmountInBaseCurrency)
	}
}
