package core

// Category is a closed-set label classifying a transaction's purpose.
// The same set backs the classifier, aggregation and the UI filters;
// nothing else may invent labels.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryBooks         Category = "books"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryOther         Category = "other"
	CategoryIncome        Category = "income"
	CategoryRecurring     Category = "recurring"
)

// Categories returns the full closed set in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryBooks,
		CategoryEntertainment,
		CategoryHealth,
		CategoryOther,
		CategoryIncome,
		CategoryRecurring,
	}
}

// ExpenseCategories returns the labels a user may pick for an expense.
func ExpenseCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryBooks,
		CategoryEntertainment,
		CategoryHealth,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryBooks, CategoryEntertainment,
		CategoryHealth, CategoryOther, CategoryIncome, CategoryRecurring:
		return true
	default:
		return false
	}
}

// Label returns the human-readable form used by the UI.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "Food & Dining"
	case CategoryTransport:
		return "Transportation"
	case CategoryBooks:
		return "Books & Supplies"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryHealth:
		return "Health & Wellness"
	case CategoryIncome:
		return "Income"
	case CategoryRecurring:
		return "Recurring"
	default:
		return "Other"
	}
}
