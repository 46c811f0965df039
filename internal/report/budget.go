package report

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// BudgetProgress compares a budgeted amount with what was spent.
type BudgetProgress struct {
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed decimal.Decimal
}

// Progress sums expenses against a budget amount. PercentUsed is rounded to a
// whole percent and is zero for a zero budget.
func Progress(budget decimal.Decimal, expenses []Transaction) BudgetProgress {
	spent := decimal.Zero
	for _, ex := range expenses {
		spent = spent.Add(ex.Amount)
	}

	percent := decimal.Zero
	if budget.IsPositive() {
		percent = spent.Mul(hundred).Div(budget).Round(0)
	}

	return BudgetProgress{
		Budget:      budget,
		Spent:       spent,
		Remaining:   budget.Sub(spent),
		PercentUsed: percent,
	}
}
