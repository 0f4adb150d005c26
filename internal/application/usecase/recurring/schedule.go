// Package recurring contains recurring transaction use cases.
package recurring

import (
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// advance returns the next occurrence after anchor for the given
// frequency. Month-based frequencies clamp to the last day of the
// target month instead of rolling over, so Jan 31 plus one month is
// Feb 28 (29 in leap years). The result is strictly after anchor for
// every valid input.
func advance(frequency entity.RecurrenceFrequency, anchor time.Time) time.Time {
	switch frequency {
	case entity.FrequencyWeekly:
		return anchor.AddDate(0, 0, 7)
	case entity.FrequencyMonthly:
		return addMonthsClamped(anchor, 1)
	case entity.FrequencyQuarterly:
		return addMonthsClamped(anchor, 3)
	case entity.FrequencyYearly:
		return addMonthsClamped(anchor, 12)
	}
	return anchor.AddDate(0, 1, 0)
}

// addMonthsClamped adds months with day-of-month clamping.
// time.AddDate normalizes overflow (Jan 31 + 1 month = Mar 3), which
// would drift the schedule, so the target day is computed explicitly.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	year, month, day := anchor.Date()

	targetMonth := time.Month(int(month) + months)
	targetYear := year
	for targetMonth > 12 {
		targetMonth -= 12
		targetYear++
	}

	last := lastDayOfMonth(targetYear, targetMonth)
	if day > last {
		day = last
	}

	hour, minute, second := anchor.Clock()
	return time.Date(targetYear, targetMonth, day, hour, minute, second, anchor.Nanosecond(), anchor.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// nextDueDate derives the template's next due date from its schedule
// anchor: the last materialization time, or the creation time when no
// occurrence was ever produced.
func nextDueDate(recurring *entity.RecurringTransaction) time.Time {
	return advance(recurring.Frequency, recurring.ScheduleAnchor())
}
