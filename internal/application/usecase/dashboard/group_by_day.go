// Package dashboard contains reporting and aggregation use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GroupByDay partitions an already-fetched page of transactions into
// day-buckets keyed by calendar date, sorted descending by date. The
// relative order inside each bucket follows the input. The daily total
// is income minus expenses in base currency.
func GroupByDay(transactions []*entity.TransactionWithRefs) []*entity.TransactionsByDate {
	buckets := make(map[time.Time]*entity.TransactionsByDate)
	var keys []time.Time

	for _, txn := range transactions {
		day := dateOnly(txn.Transaction.Date)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &entity.TransactionsByDate{
				Date:       day,
				DailyTotal: decimal.Zero,
			}
			buckets[day] = bucket
			keys = append(keys, day)
		}

		bucket.Transactions = append(bucket.Transactions, txn)
		if txn.Transaction.Type == entity.TransactionTypeIncome {
			bucket.DailyTotal = bucket.DailyTotal.Add(txn.Transaction.AmountInBaseCurrency)
		} else {
			bucket.DailyTotal = bucket.DailyTotal.Sub(txn.Transaction.AmountInBaseCurrency)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].After(keys[j])
	})

	grouped := make([]*entity.TransactionsByDate, len(keys))
	for i, key := range keys {
		grouped[i] = buckets[key]
	}
	return grouped
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
