package services

import (
	"testing"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestDailyChecker(t *testing.T) {
	c := DailyChecker{}
	cases := []struct {
		name string
		last time.Time
		now  time.Time
		want bool
	}{
		{"never run", time.Time{}, date(2024, 9, 10), true},
		{"same day", date(2024, 9, 10), date(2024, 9, 10), false},
		{"next day", date(2024, 9, 10), date(2024, 9, 11), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsDue(tc.last, tc.now, time.Time{}); got != tc.want {
				t.Fatalf("IsDue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWeeklyChecker(t *testing.T) {
	c := WeeklyChecker{}
	cases := []struct {
		name string
		last time.Time
		now  time.Time
		want bool
	}{
		{"never run", time.Time{}, date(2024, 9, 10), true},
		{"six days", date(2024, 9, 10), date(2024, 9, 16), false},
		{"seven days", date(2024, 9, 10), date(2024, 9, 17), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsDue(tc.last, tc.now, time.Time{}); got != tc.want {
				t.Fatalf("IsDue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMonthlyChecker(t *testing.T) {
	c := MonthlyChecker{}
	start := date(2024, 1, 15)
	cases := []struct {
		name string
		last time.Time
		now  time.Time
		want bool
	}{
		{"never run", time.Time{}, date(2024, 9, 10), true},
		{"same month", date(2024, 9, 15), date(2024, 9, 25), false},
		{"new month before target day", date(2024, 8, 15), date(2024, 9, 10), false},
		{"new month at target day", date(2024, 8, 15), date(2024, 9, 15), true},
		{"new month after target day", date(2024, 8, 15), date(2024, 9, 20), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsDue(tc.last, tc.now, start); got != tc.want {
				t.Fatalf("IsDue = %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("target day clamps to short month", func(t *testing.T) {
		// Template started on the 31st; February fires on the 29th.
		if !c.IsDue(date(2024, 1, 31), date(2024, 2, 29), date(2024, 1, 31)) {
			t.Fatal("expected due on last day of short month")
		}
	})
}

func TestCheckerFor(t *testing.T) {
	for _, f := range []core.Frequency{core.Daily, core.Weekly, core.Monthly} {
		if _, err := CheckerFor(f); err != nil {
			t.Errorf("CheckerFor(%s): %v", f, err)
		}
	}
	if _, err := CheckerFor("yearly"); err == nil {
		t.Error("expected error for unsupported frequency")
	}
}
