// Package seed provides the demo data a fresh session starts with.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pocket-budget/models"
	"pocket-budget/store"
)

// DemoStartingBalance is the starting balance used with the demo transactions
var DemoStartingBalance = decimal.NewFromInt(500)

// Demo returns the demo transactions stamped with now and tag
func Demo(now time.Time, tag string) []models.Transaction {
	entry := func(t models.TransactionType, amount int64, description, category string) models.Transaction {
		return models.Transaction{
			ID:          uuid.NewString(),
			Type:        t,
			Date:        now,
			PeriodTag:   tag,
			Amount:      decimal.NewFromInt(amount),
			Description: description,
			Category:    category,
		}
	}

	return []models.Transaction{
		entry(models.Income, 3200, "Salary", "Job"),
		entry(models.Expense, 1200, "Rent", "Housing"),
		entry(models.Expense, 150, "Groceries", "Food"),
	}
}

// Load sets the demo starting balance and appends the demo transactions
func Load(s *store.Store, now time.Time, tag string) error {
	if _, err := s.Dispatch(store.SetStartingBalance{Amount: DemoStartingBalance}); err != nil {
		return fmt.Errorf("seed starting balance: %w", err)
	}

	for _, tx := range Demo(now, tag) {
		if _, err := s.Dispatch(store.AppendTransaction{Transaction: tx}); err != nil {
			return fmt.Errorf("seed transaction %q: %w", tx.Description, err)
		}
	}
	return nil
}
