package classify

import (
	"testing"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		desc string
		want core.Category
	}{
		{"Coffee at Starbucks", core.CategoryFood},
		{"lunch with friends", core.CategoryFood},
		{"Bus pass", core.CategoryTransport},
		{"Uber ride home", core.CategoryTransport},
		{"Textbooks", core.CategoryBooks},
		{"new pens", core.CategoryBooks},
		{"Netflix subscription", core.CategoryEntertainment},
		{"movie night", core.CategoryEntertainment},
		{"Pharmacy run", core.CategoryHealth},
		{"doctor visit copay", core.CategoryHealth},
		{"", core.CategoryOther},
		{"xyz", core.CategoryOther},
		{"rent payment", core.CategoryOther},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := Classify(tc.desc); got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.desc, got, tc.want)
			}
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// "book" (rule 3) precedes "movie" (rule 4), so books wins.
	if got := Classify("book a movie ticket"); got != core.CategoryBooks {
		t.Fatalf("expected books for overlapping keywords, got %q", got)
	}
	// "food" (rule 1) beats "gas" (rule 2).
	if got := Classify("gas station food"); got != core.CategoryFood {
		t.Fatalf("expected food for overlapping keywords, got %q", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("COFFEE"); got != core.CategoryFood {
		t.Fatalf("expected food for upper-case input, got %q", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	first := Classify("coffee and a movie")
	for i := 0; i < 10; i++ {
		if got := Classify("coffee and a movie"); got != first {
			t.Fatalf("classification changed between calls: %q vs %q", first, got)
		}
	}
}
