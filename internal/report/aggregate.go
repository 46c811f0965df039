// Package report reduces incomes and expenses into summaries and trends.
// Nothing in this package performs I/O.
package report

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Uncategorized is the category key for expenses whose category cannot be resolved.
const Uncategorized = "Uncategorized"

// Kind tags a transaction as income or expense.
type Kind int8

const (
	KindIncome Kind = iota
	KindExpense
)

func (k Kind) String() string {
	if k == KindIncome {
		return "income"
	}
	return "expense"
}

// Transaction is the aggregation view of an income or expense.
// Category holds the resolved display name for expenses and the source name
// for incomes; empty means unresolved.
type Transaction struct {
	ID          uuid.UUID
	Kind        Kind
	Amount      decimal.Decimal
	OccurredOn  time.Time
	Category    string
	Description string
}

// CategoryTotal is one entry of a summary's category breakdown.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// Summary is the result of Aggregate. It is recomputed on every request.
type Summary struct {
	Window         Window
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
	CategoryTotals map[string]decimal.Decimal
	// TopCategory is nil when there are no expenses.
	TopCategory  *string
	IncomeCount  int
	ExpenseCount int
}

// Aggregate sums incomes and expenses for a window. The inputs are trusted to
// be already filtered to the owner and window.
func Aggregate(incomes, expenses []Transaction, window Window) Summary {
	totalIncome := decimal.Zero
	for _, in := range incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}

	totalExpense := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	for _, ex := range expenses {
		totalExpense = totalExpense.Add(ex.Amount)
		name := categoryName(ex.Category)
		categoryTotals[name] = categoryTotals[name].Add(ex.Amount)
	}

	summary := Summary{
		Window:         window,
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		Balance:        totalIncome.Sub(totalExpense),
		CategoryTotals: categoryTotals,
		IncomeCount:    len(incomes),
		ExpenseCount:   len(expenses),
	}

	if ranked := RankCategories(categoryTotals); len(ranked) > 0 {
		top := ranked[0].Name
		summary.TopCategory = &top
	}

	return summary
}

// RankCategories orders totals by amount descending, then name ascending.
func RankCategories(totals map[string]decimal.Decimal) []CategoryTotal {
	ranked := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		ranked = append(ranked, CategoryTotal{Name: name, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Total.Cmp(ranked[j].Total); c != 0 {
			return c > 0
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

func categoryName(name string) string {
	if name == "" {
		return Uncategorized
	}
	return name
}
