// Package dashboard contains reporting and aggregation use cases.
package dashboard

import (
	"errors"
	"testing"
	"time"
)

func TestResolveTimePeriod(t *testing.T) {
	// Wednesday, mid-quarter, inside the April-anchored fiscal year.
	now := time.Date(2025, time.June, 18, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		selector  TimePeriod
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today spans the full calendar day",
			selector:  PeriodToday,
			wantStart: time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 18, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "this week starts on Monday",
			selector:  PeriodThisWeek,
			wantStart: time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 22, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "this month covers June",
			selector:  PeriodThisMonth,
			wantStart: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 30, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "last month covers May",
			selector:  PeriodLastMonth,
			wantStart: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.May, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "this quarter covers April through June",
			selector:  PeriodThisQuarter,
			wantStart: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 30, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "this year covers the calendar year",
			selector:  PeriodThisYear,
			wantStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.December, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "last year covers the previous calendar year",
			selector:  PeriodLastYear,
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.December, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "current fiscal year starts in April",
			selector:  PeriodFiscalYearCurrent,
			wantStart: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.March, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
		{
			name:      "previous fiscal year spans April to March",
			selector:  PeriodFiscalYearPrevious,
			wantStart: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTimePeriod(tt.selector, now, nil, nil)
			if err != nil {
				t.Fatalf("ResolveTimePeriod(%s) returned error: %v", tt.selector, err)
			}
			if got.Start == nil || got.End == nil {
				t.Fatalf("ResolveTimePeriod(%s) returned unbounded range", tt.selector)
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("start = %s, want %s", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("end = %s, want %s", got.End, tt.wantEnd)
			}
		})
	}
}

func TestResolveTimePeriodAll(t *testing.T) {
	got, err := ResolveTimePeriod(PeriodAll, time.Now(), nil, nil)
	if err != nil {
		t.Fatalf("ResolveTimePeriod(all) returned error: %v", err)
	}
	if got.Start != nil || got.End != nil {
		t.Errorf("expected unbounded range for all, got start=%v end=%v", got.Start, got.End)
	}
}

func TestResolveTimePeriodFiscalYearBeforeApril(t *testing.T) {
	// February belongs to the fiscal year that started the previous April.
	now := time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC)

	got, err := ResolveTimePeriod(PeriodFiscalYearCurrent, now, nil, nil)
	if err != nil {
		t.Fatalf("ResolveTimePeriod returned error: %v", err)
	}

	wantStart := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(wantStart) {
		t.Errorf("start = %s, want %s", got.Start, wantStart)
	}
}

func TestResolveTimePeriodCustom(t *testing.T) {
	now := time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)

	t.Run("requires both bounds", func(t *testing.T) {
		start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

		if _, err := ResolveTimePeriod(PeriodCustom, now, &start, nil); !errors.Is(err, ErrCustomBoundsRequired) {
			t.Errorf("expected ErrCustomBoundsRequired, got %v", err)
		}
		if _, err := ResolveTimePeriod(PeriodCustom, now, nil, nil); !errors.Is(err, ErrCustomBoundsRequired) {
			t.Errorf("expected ErrCustomBoundsRequired, got %v", err)
		}
	})

	t.Run("widens bounds to full days", func(t *testing.T) {
		start := time.Date(2025, time.January, 5, 10, 30, 0, 0, time.UTC)
		end := time.Date(2025, time.January, 20, 8, 0, 0, 0, time.UTC)

		got, err := ResolveTimePeriod(PeriodCustom, now, &start, &end)
		if err != nil {
			t.Fatalf("ResolveTimePeriod returned error: %v", err)
		}

		wantStart := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, time.January, 20, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
		if !got.Start.Equal(wantStart) {
			t.Errorf("start = %s, want %s", got.Start, wantStart)
		}
		if !got.End.Equal(wantEnd) {
			t.Errorf("end = %s, want %s", got.End, wantEnd)
		}
	})
}

func TestResolveTimePeriodUnknownSelector(t *testing.T) {
	if _, err := ResolveTimePeriod("next_week", time.Now(), nil, nil); !errors.Is(err, ErrUnknownTimePeriod) {
		t.Errorf("expected ErrUnknownTimePeriod, got %v", err)
	}
}
