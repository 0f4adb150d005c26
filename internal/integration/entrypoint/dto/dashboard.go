// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"
)

// SummaryResponse represents period totals in API responses.
type SummaryResponse struct {
	Period           string     `json:"period"`
	Start            *time.Time `json:"start,omitempty"`
	End              *time.Time `json:"end,omitempty"`
	TotalIncome      string     `json:"totalIncome"`
	TotalExpenses    string     `json:"totalExpenses"`
	NetTotal         string     `json:"netTotal"`
	TransactionCount int64      `json:"transactionCount"`
}
