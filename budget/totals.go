// Package budget holds the pure calculations behind a budget view: totals,
// ending balance, currency formatting and the admission gate that turns raw
// form input into a Transaction.
package budget

import (
	"github.com/shopspring/decimal"
	"pocket-budget/models"
)

// ComputeTotals sums income and expense amounts separately.
// Amounts are summed as-is; sign validation belongs to the admission gate.
func ComputeTotals(transactions []models.Transaction) models.Totals {
	totals := models.Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, tx := range transactions {
		switch tx.Type {
		case models.Income:
			totals.Income = totals.Income.Add(tx.Amount)
		case models.Expense:
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}

	return totals
}

// ComputeEndingBalance returns startingBalance + incomeTotal - expenseTotal
func ComputeEndingBalance(startingBalance, incomeTotal, expenseTotal decimal.Decimal) decimal.Decimal {
	return startingBalance.Add(incomeTotal).Sub(expenseTotal)
}

// Summarize derives a full snapshot from a starting balance and transactions
func Summarize(startingBalance decimal.Decimal, transactions []models.Transaction) models.Snapshot {
	totals := ComputeTotals(transactions)
	return models.Snapshot{
		IncomeTotal:     totals.Income,
		ExpenseTotal:    totals.Expense,
		StartingBalance: startingBalance,
		EndingBalance:   ComputeEndingBalance(startingBalance, totals.Income, totals.Expense),
	}
}
