package model

// ExpenseCategories is the fixed set of categories offered when an
// expense is entered. The metrics engine treats categories as opaque
// strings; this list is enforced at entry time only.
var ExpenseCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertainment",
	"Health",
	"Other",
}

// IncomeCategories is the fixed set of income sources.
var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Business",
	"Investment",
	"Gift",
	"Other",
}

// KnownCategory reports whether name appears in the category list for
// the given transaction type.
func KnownCategory(t Type, name string) bool {
	list := ExpenseCategories
	if t == TypeIncome {
		list = IncomeCategories
	}
	for _, c := range list {
		if c == name {
			return true
		}
	}
	return false
}
