// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Currency represents a supported currency code.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// BaseCurrency is the single currency all cross-currency amounts are
// normalized into for aggregation.
const BaseCurrency = CurrencyINR

// usdToINR is the fixed conversion rate applied at write time.
// Amounts in base currency are never recomputed retroactively.
var usdToINR = decimal.NewFromInt(83)

// IsValidCurrency reports whether the given currency code is supported.
func IsValidCurrency(c Currency) bool {
	return c == CurrencyINR || c == CurrencyUSD
}

// ToBaseCurrency converts an amount in the given currency to the base
// currency using the fixed conversion rate.
func ToBaseCurrency(amount decimal.Decimal, currency Currency) decimal.Decimal {
	if currency == CurrencyUSD {
		return amount.Mul(usdToINR)
	}
	return amount
}
