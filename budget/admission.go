package budget

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pocket-budget/models"
)

const (
	// DefaultDescription replaces a blank description
	DefaultDescription = "Entry"
	// DefaultIncomeCategory replaces a blank category on income entries
	DefaultIncomeCategory = "General Income"
	// DefaultExpenseCategory replaces a blank category on expense entries
	DefaultExpenseCategory = "General Expense"
)

// Reason identifies why an entry was not admitted
type Reason string

const (
	ReasonEmptyAmount       Reason = "empty_amount"
	ReasonInvalidAmount     Reason = "invalid_amount"
	ReasonNonPositiveAmount Reason = "non_positive_amount"
	ReasonAmountTooLarge    Reason = "amount_too_large"
	ReasonInvalidType       Reason = "invalid_type"
)

// ErrRejected matches every *RejectionError with errors.Is
var ErrRejected = errors.New("entry rejected")

// RejectionError is returned when raw input cannot become a Transaction
type RejectionError struct {
	Reason Reason
	Value  string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("entry rejected: %s (%q)", e.Reason, e.Value)
}

// Is lets errors.Is(err, ErrRejected) match any rejection
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

func reject(reason Reason, value string) error {
	return &RejectionError{Reason: reason, Value: value}
}

// RejectionReason extracts the reason from err, if it is a rejection
func RejectionReason(err error) (Reason, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}

// AdmitContext supplies the values an admitted transaction is stamped with
type AdmitContext struct {
	Now       time.Time
	PeriodTag string
	// NewID defaults to a random UUID
	NewID func() string
}

// Normalize trims every field and substitutes placeholders for blank
// description and category. The category placeholder depends on the type.
func Normalize(d models.Draft) models.Draft {
	if t, ok := models.ParseTransactionType(string(d.Type)); ok {
		d.Type = t
	}
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	d.Amount = strings.TrimSpace(d.Amount)

	if d.Description == "" {
		d.Description = DefaultDescription
	}
	if d.Category == "" {
		d.Category = DefaultCategory(d.Type)
	}
	return d
}

// DefaultCategory returns the placeholder category for a transaction type
func DefaultCategory(t models.TransactionType) string {
	if t == models.Income {
		return DefaultIncomeCategory
	}
	return DefaultExpenseCategory
}

// ParseAmount parses a user-typed amount with ParseDecimal. A comma is
// accepted as the decimal separator. The value is rounded half away from
// zero to cents and must be strictly positive after rounding.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}

	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, reject(ReasonNonPositiveAmount, raw)
	}
	return amount, nil
}

// Admit validates a draft and builds the Transaction it describes.
// On rejection the returned error is a *RejectionError and no transaction is built.
func Admit(d models.Draft, ctx AdmitContext) (models.Transaction, error) {
	d = Normalize(d)
	if !d.Type.Valid() {
		return models.Transaction{}, reject(ReasonInvalidType, string(d.Type))
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	newID := ctx.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	return models.Transaction{
		ID:          newID(),
		Type:        d.Type,
		Date:        now,
		PeriodTag:   ctx.PeriodTag,
		Amount:      amount,
		Description: d.Description,
		Category:    d.Category,
	}, nil
}
