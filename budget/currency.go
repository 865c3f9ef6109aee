package budget

import (
	"strings"

	"github.com/shopspring/decimal"
	"pocket-budget/models"
)

// DefaultSymbol is used by FormatCurrency and by formatters created with an empty symbol
const DefaultSymbol = "$"

// Formatter renders amounts as fixed-point currency strings, e.g. "$1,234.50".
type Formatter struct {
	symbol string
}

var defaultFormatter = NewFormatter(DefaultSymbol)

// NewFormatter creates a formatter with the given currency symbol.
// Digits are grouped in threes with "," and cents follow ".".
func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Formatter{symbol: symbol}
}

// Symbol returns the currency symbol the formatter prefixes
func (f *Formatter) Symbol() string {
	return f.symbol
}

// Format rounds to cents and renders the amount. Negative values get a
// leading minus before the symbol: "-$12.50".
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole, cents, _ := strings.Cut(rounded.StringFixed(2), ".")
	return sign + f.symbol + groupThousands(whole) + "." + cents
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatSigned renders the magnitude of amount with "+" for income and "-" for expense.
// Transaction amounts are stored unsigned, so the sign is chosen here by the caller.
func (f *Formatter) FormatSigned(t models.TransactionType, amount decimal.Decimal) string {
	magnitude := f.Format(amount.Abs())
	if t == models.Expense {
		return "-" + magnitude
	}
	return "+" + magnitude
}

// FormatCurrency formats amount with the default "$" formatter
func FormatCurrency(amount decimal.Decimal) string {
	return defaultFormatter.Format(amount)
}
