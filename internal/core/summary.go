package core

// BudgetTier is the qualitative budget status derived from BudgetPercent.
type BudgetTier string

const (
	TierSuccess BudgetTier = "success"
	TierWarning BudgetTier = "warning"
	TierDanger  BudgetTier = "danger"
)

// Summary is the set of derived statistics recomputed from the full
// ledger at query time. Nothing in it is cached or incremental.
type Summary struct {
	MonthlySpent   Money
	CategoryTotals map[Category]Money
	TotalIncome    Money
	TotalExpenses  Money
	DailyAverage   Money
	BudgetPercent  int
	BudgetStatus   BudgetTier
}

// GoalProgress carries the raw, unclamped completion ratio for one goal.
// Consumers clamp with DisplayPercent; the raw value stays available.
type GoalProgress struct {
	ID      string
	Title   string
	Target  Money
	Current Money
	Percent float64
}

// DisplayPercent clamps the ratio to [0,100] for rendering.
func (g GoalProgress) DisplayPercent() float64 {
	if g.Percent < 0 {
		return 0
	}
	if g.Percent > 100 {
		return 100
	}
	return g.Percent
}

// Insights holds the presentation-ready values derived from a Summary.
// Despite the "AI" label in the UI copy, every field is a deterministic
// closed-form function of current aggregates.
type Insights struct {
	PredictedMonthlySpend Money
	Recommendation        string
	GoalProgress          []GoalProgress
	DidYouKnow            []string
}
