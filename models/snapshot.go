package models

import (
	"github.com/shopspring/decimal"
)

// Totals holds income and expense sums over a set of transactions
type Totals struct {
	Income  decimal.Decimal `json:"income_total"`
	Expense decimal.Decimal `json:"expense_total"`
}

// Snapshot is the derived view of a budget. It is never stored.
type Snapshot struct {
	IncomeTotal     decimal.Decimal `json:"income_total"`
	ExpenseTotal    decimal.Decimal `json:"expense_total"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	EndingBalance   decimal.Decimal `json:"ending_balance"`
}
