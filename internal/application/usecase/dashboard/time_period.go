// Package dashboard contains reporting and aggregation use cases.
package dashboard

import (
	"errors"
	"time"
)

// TimePeriod is a semantic selector for a reporting date range.
type TimePeriod string

const (
	PeriodAll                TimePeriod = "all"
	PeriodToday              TimePeriod = "today"
	PeriodThisWeek           TimePeriod = "this_week"
	PeriodThisMonth          TimePeriod = "this_month"
	PeriodLastMonth          TimePeriod = "last_month"
	PeriodThisQuarter        TimePeriod = "this_quarter"
	PeriodThisYear           TimePeriod = "this_year"
	PeriodLastYear           TimePeriod = "last_year"
	PeriodFiscalYearCurrent  TimePeriod = "fiscal_year_current"
	PeriodFiscalYearPrevious TimePeriod = "fiscal_year_previous"
	PeriodCustom             TimePeriod = "custom"
)

// FiscalYearStartMonth anchors the fiscal year to April.
const FiscalYearStartMonth = time.April

// ErrUnknownTimePeriod is returned for an unrecognized selector.
var ErrUnknownTimePeriod = errors.New("unknown time period selector")

// ErrCustomBoundsRequired is returned when the custom selector is used
// without explicit bounds.
var ErrCustomBoundsRequired = errors.New("custom period requires start and end dates")

// DateRange holds inclusive date bounds. Nil ends are unbounded.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ResolveTimePeriod maps a semantic selector to concrete inclusive
// date bounds relative to now. Start bounds land on the first instant
// of their day and end bounds on the last, so both compare inclusively
// against stored timestamps.
func ResolveTimePeriod(selector TimePeriod, now time.Time, customStart, customEnd *time.Time) (DateRange, error) {
	switch selector {
	case PeriodAll:
		return DateRange{}, nil

	case PeriodToday:
		return rangeOf(startOfDay(now), endOfDay(now)), nil

	case PeriodThisWeek:
		// Week starts on Monday.
		offset := (int(now.Weekday()) + 6) % 7
		start := startOfDay(now.AddDate(0, 0, -offset))
		return rangeOf(start, endOfDay(start.AddDate(0, 0, 6))), nil

	case PeriodThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return rangeOf(start, endOfDay(start.AddDate(0, 1, -1))), nil

	case PeriodLastMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		return rangeOf(start, endOfDay(start.AddDate(0, 1, -1))), nil

	case PeriodThisQuarter:
		quarterStartMonth := time.Month(((int(now.Month())-1)/3)*3 + 1)
		start := time.Date(now.Year(), quarterStartMonth, 1, 0, 0, 0, 0, now.Location())
		return rangeOf(start, endOfDay(start.AddDate(0, 3, -1))), nil

	case PeriodThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return rangeOf(start, endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))), nil

	case PeriodLastYear:
		start := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
		return rangeOf(start, endOfDay(time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location()))), nil

	case PeriodFiscalYearCurrent:
		start := fiscalYearStart(now)
		return rangeOf(start, endOfDay(start.AddDate(1, 0, -1))), nil

	case PeriodFiscalYearPrevious:
		start := fiscalYearStart(now).AddDate(-1, 0, 0)
		return rangeOf(start, endOfDay(start.AddDate(1, 0, -1))), nil

	case PeriodCustom:
		if customStart == nil || customEnd == nil {
			return DateRange{}, ErrCustomBoundsRequired
		}
		return rangeOf(startOfDay(*customStart), endOfDay(*customEnd)), nil
	}

	return DateRange{}, ErrUnknownTimePeriod
}

// fiscalYearStart returns the start of the fiscal year containing or
// preceding now.
func fiscalYearStart(now time.Time) time.Time {
	year := now.Year()
	if now.Month() < FiscalYearStartMonth {
		year--
	}
	return time.Date(year, FiscalYearStartMonth, 1, 0, 0, 0, 0, now.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func rangeOf(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}
