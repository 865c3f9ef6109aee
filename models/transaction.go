package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a transaction adds to or subtracts from the balance
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the known variants
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// ParseTransactionType parses a type name, ignoring case and surrounding whitespace
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Transaction represents one income or expense entry.
// Amount is always positive; the sign comes from Type.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	PeriodTag   string          `json:"period_tag"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// Draft holds the raw field values of the entry form before admission
type Draft struct {
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      string          `json:"amount"`
}
