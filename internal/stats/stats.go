// Package stats derives summary statistics and insights from the ledger.
//
// Everything here recomputes from scratch on every call: identical input
// sequences yield identical output regardless of call frequency. No state
// is kept between calls.
package stats

import (
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

// BudgetLimit is the fixed monthly budget against which spending is
// measured: 1000 currency units.
var BudgetLimit = core.Money{Cents: 100_000}

// Budget tier thresholds on the rounded budget percentage.
const (
	dangerPercent  = 90
	warningPercent = 75
)

// Summarize computes all derived statistics for the given transaction
// sequence at the given wall-clock date.
//
// MonthlySpent compares calendar month numbers only, not full dates: an
// expense from the same month of a prior year is still counted. That
// mirrors the established reporting behavior and is deliberately not
// corrected here.
func Summarize(txs []core.Transaction, now time.Time) core.Summary {
	s := core.Summary{
		CategoryTotals: make(map[core.Category]core.Money),
	}

	month := now.Month()
	for _, t := range txs {
		switch t.Kind {
		case core.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case core.Expense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
			s.CategoryTotals[t.Category] = s.CategoryTotals[t.Category].Add(t.Amount)
			if t.OccurredAt.Month() == month {
				s.MonthlySpent = s.MonthlySpent.Add(t.Amount)
			}
		}
	}

	// Day of month is always >= 1, so the divisor can never be zero.
	day := int64(now.Day())
	s.DailyAverage = core.Money{Cents: divideRounded(s.MonthlySpent.Cents, day)}

	s.BudgetPercent = roundedPercent(s.MonthlySpent.Cents, BudgetLimit.Cents)
	s.BudgetStatus = budgetTier(s.BudgetPercent)
	return s
}

func budgetTier(percent int) core.BudgetTier {
	switch {
	case percent >= dangerPercent:
		return core.TierDanger
	case percent >= warningPercent:
		return core.TierWarning
	default:
		return core.TierSuccess
	}
}

// roundedPercent returns round(num/den*100). May exceed 100.
func roundedPercent(num, den int64) int {
	if den == 0 {
		return 0
	}
	return int((num*100 + den/2) / den)
}

// divideRounded returns num/den with half-up rounding.
func divideRounded(num, den int64) int64 {
	if den == 0 {
		return 0
	}
	return (num + den/2) / den
}
