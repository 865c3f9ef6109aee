package api

import (
	"github.com/shopspring/decimal"
	"pocket-budget/models"
)

// CreateTransactionRequest is the raw entry form input. Amount is kept as
// typed by the user and parsed by the admission gate.
type CreateTransactionRequest struct {
	Type        string `json:"type" example:"expense"`
	Description string `json:"description" example:"Groceries"`
	Category    string `json:"category" example:"Food"`
	Amount      string `json:"amount" example:"42.50"`
}

// UpdateFormRequest edits entry form fields; omitted fields are unchanged
type UpdateFormRequest struct {
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Amount      *string `json:"amount,omitempty"`
}

// SetStartingBalanceRequest replaces the starting balance
type SetStartingBalanceRequest struct {
	Amount string `json:"amount" binding:"required" example:"500"`
}

// FormattedSnapshot holds the display strings of a snapshot
type FormattedSnapshot struct {
	IncomeTotal     string `json:"income_total"`
	ExpenseTotal    string `json:"expense_total"`
	StartingBalance string `json:"starting_balance"`
	EndingBalance   string `json:"ending_balance"`
}

// SnapshotResponse is the derived budget summary
type SnapshotResponse struct {
	IncomeTotal      decimal.Decimal   `json:"income_total"`
	ExpenseTotal     decimal.Decimal   `json:"expense_total"`
	StartingBalance  decimal.Decimal   `json:"starting_balance"`
	EndingBalance    decimal.Decimal   `json:"ending_balance"`
	TransactionCount int               `json:"transaction_count"`
	Formatted        FormattedSnapshot `json:"formatted"`
}

// TransactionRow is a transaction with its signed display amount
type TransactionRow struct {
	models.Transaction
	DisplayAmount string `json:"display_amount"`
}

// TransactionResponse is the response for an admitted transaction
type TransactionResponse struct {
	Transaction TransactionRow   `json:"transaction"`
	Snapshot    SnapshotResponse `json:"snapshot"`
}

// TransactionListResponse is the response for the transaction table
type TransactionListResponse struct {
	Transactions []TransactionRow `json:"transactions"`
	Snapshot     SnapshotResponse `json:"snapshot"`
	Pagination   Pagination       `json:"pagination"`
}

// FormResponse is the current entry form draft
type FormResponse struct {
	Draft models.Draft `json:"draft"`
}

// Pagination contains pagination information
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

// ErrorResponse is the response for an error. Reason is set for rejected entries.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
