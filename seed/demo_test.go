package seed

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pocket-budget/store"
)

func TestLoad(t *testing.T) {
	s := store.New(store.Options{})
	now := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Load(s, now, "Oct 16-31, 2026"))

	snap := s.Snapshot()
	assert.True(t, decimal.NewFromInt(500).Equal(snap.StartingBalance))
	assert.True(t, decimal.NewFromInt(3200).Equal(snap.IncomeTotal))
	assert.True(t, decimal.NewFromInt(1350).Equal(snap.ExpenseTotal))
	assert.True(t, decimal.NewFromInt(4350).Equal(snap.EndingBalance))

	state := s.GetState()
	require.Len(t, state.Transactions, 3)
	for _, tx := range state.Transactions {
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, now, tx.Date)
		assert.Equal(t, "Oct 16-31, 2026", tx.PeriodTag)
	}
}

func TestDemoIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tx := range Demo(time.Now(), "") {
		assert.False(t, seen[tx.ID])
		seen[tx.ID] = true
	}
}
