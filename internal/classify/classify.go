// Package classify guesses an expense category from free-text descriptions.
//
// Classification is a pure keyword match over a fixed, ordered rule list.
// Order matters: a description may match several rules ("book a movie
// ticket" hits both books and entertainment) and the first match wins.
package classify

import (
	"strings"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

type rule struct {
	category core.Category
	keywords []string
}

// rules is evaluated top to bottom. Do not reorder without revisiting
// descriptions that match more than one keyword set.
var rules = []rule{
	{core.CategoryFood, []string{"coffee", "food", "restaurant", "lunch"}},
	{core.CategoryTransport, []string{"bus", "uber", "gas", "transport"}},
	{core.CategoryBooks, []string{"book", "textbook", "supplies", "pen"}},
	{core.CategoryEntertainment, []string{"movie", "game", "entertainment", "netflix"}},
	{core.CategoryHealth, []string{"doctor", "medicine", "health", "pharmacy"}},
}

// Classify maps a description to a category label. It is total and
// deterministic: same input, same output, independent of any store state.
// Unmatched descriptions fall back to CategoryOther.
func Classify(description string) core.Category {
	desc := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.category
			}
		}
	}
	return core.CategoryOther
}
