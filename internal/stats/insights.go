package stats

import (
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

// foodSpendThreshold is the food-category total above which the
// reduction recommendation replaces the praise variant: 100 currency units.
const foodSpendThreshold = 10_000

const (
	recommendationReduce = "Consider reducing dining out expenses by $50 to stay within budget. Your coffee purchases have increased 40% this week."
	recommendationPraise = "Great job managing your food expenses! Consider setting aside the savings for your emergency fund."
)

// didYouKnow lines are static copy shown alongside the computed values.
var didYouKnow = []string{
	"You spend 23% more on weekends than weekdays. Consider meal prepping to reduce weekend food costs.",
	"Your transportation costs are 15% below average for students. Keep using that bus pass!",
	"Best spending day: Tuesday (lowest average). Worst: Saturday (highest impulse purchases).",
}

// DeriveInsights turns a summary and the goal set into presentation-ready
// values. The prediction is a fixed 10% extrapolation of the current
// monthly spend, not a statistical model; the recommendation is a simple
// threshold on the food-category total.
func DeriveInsights(sum core.Summary, goals []core.Goal) core.Insights {
	ins := core.Insights{
		PredictedMonthlySpend: core.Money{Cents: divideRounded(sum.MonthlySpent.Cents*11, 10)},
		Recommendation:        recommendationPraise,
		DidYouKnow:            didYouKnow,
	}
	if sum.CategoryTotals[core.CategoryFood].Cents > foodSpendThreshold {
		ins.Recommendation = recommendationReduce
	}

	for _, g := range goals {
		p := core.GoalProgress{
			ID:      g.ID,
			Title:   g.Title,
			Target:  g.Target,
			Current: g.Current,
		}
		// Raw ratio, deliberately unclamped; display code clamps.
		if g.Target.Cents != 0 {
			p.Percent = float64(g.Current.Cents) / float64(g.Target.Cents) * 100
		}
		ins.GoalProgress = append(ins.GoalProgress, p)
	}
	return ins
}
