package store

import (
	"github.com/shopspring/decimal"
	"pocket-budget/models"
)

// Action is a state change request passed to Store.Dispatch
type Action interface {
	actionName() string
}

// UpdateDraft edits entry form fields. Nil fields are left as they are.
type UpdateDraft struct {
	Type        *models.TransactionType
	Description *string
	Category    *string
	Amount      *string
}

// SubmitDraft admits the current form draft
type SubmitDraft struct{}

// SubmitEntry admits the given input directly, leaving the form draft untouched
type SubmitEntry struct {
	Draft models.Draft
}

// AppendTransaction appends an already-built transaction, e.g. from seed data
type AppendTransaction struct {
	Transaction models.Transaction
}

// SetStartingBalance replaces the starting balance
type SetStartingBalance struct {
	Amount decimal.Decimal
}

func (UpdateDraft) actionName() string        { return "update_draft" }
func (SubmitDraft) actionName() string        { return "submit_draft" }
func (SubmitEntry) actionName() string        { return "submit_entry" }
func (AppendTransaction) actionName() string  { return "append_transaction" }
func (SetStartingBalance) actionName() string { return "set_starting_balance" }

// ActionName returns a short name for logging
func ActionName(a Action) string {
	if a == nil {
		return "nil"
	}
	return a.actionName()
}
