// Dueness checking for recurring expense templates. Each frequency has
// its own strategy so the processor stays a plain loop.
package services

import (
	"fmt"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

// DuenessChecker decides whether a recurring template should produce a
// concrete expense, given when it last did and the template start date.
type DuenessChecker interface {
	IsDue(lastExecution, now time.Time, startDate time.Time) bool
}

// DailyChecker fires once per calendar day.
type DailyChecker struct{}

func (DailyChecker) IsDue(lastExecution, now time.Time, _ time.Time) bool {
	if lastExecution.IsZero() {
		return true
	}
	return lastExecution.Format("2006-01-02") != now.Format("2006-01-02")
}

// WeeklyChecker fires when 7 or more days have passed.
type WeeklyChecker struct{}

func (WeeklyChecker) IsDue(lastExecution, now time.Time, _ time.Time) bool {
	if lastExecution.IsZero() {
		return true
	}
	return now.Sub(lastExecution).Hours()/24 >= 7
}

// MonthlyChecker fires in a new month once the template's day of month is
// reached. When the target day exceeds the month's length it clamps to
// the last day.
type MonthlyChecker struct{}

func (MonthlyChecker) IsDue(lastExecution, now time.Time, startDate time.Time) bool {
	if lastExecution.IsZero() {
		return true
	}
	if lastExecution.Year() == now.Year() && lastExecution.Month() == now.Month() {
		return false
	}

	targetDay := startDate.Day()
	lastDayOfMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if targetDay > lastDayOfMonth {
		targetDay = lastDayOfMonth
	}
	return now.Day() >= targetDay
}

// CheckerFor returns the strategy for a frequency.
func CheckerFor(freq core.Frequency) (DuenessChecker, error) {
	switch freq {
	case core.Daily:
		return DailyChecker{}, nil
	case core.Weekly:
		return WeeklyChecker{}, nil
	case core.Monthly:
		return MonthlyChecker{}, nil
	default:
		return nil, fmt.Errorf("no dueness checker for frequency %q", freq)
	}
}
