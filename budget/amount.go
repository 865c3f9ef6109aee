package budget

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxIntegerDigits bounds the whole part of any typed amount or balance
	MaxIntegerDigits = 12
	// MaxFractionDigits bounds the digits after the separator; they are rounded to cents
	MaxFractionDigits = 8
)

// Optional sign, digits, and at most one "." or "," separator. No exponents.
var plainDecimal = regexp.MustCompile(`^([+-]?)(\d*)(?:[.,](\d*))?$`)

// ParseDecimal parses a plain decimal such as "1234.5", "-12,50" or "+7".
// Exponent notation, grouping separators and values with more than
// MaxIntegerDigits whole digits are rejected before any arithmetic is done.
// The sign is not checked.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, reject(ReasonEmptyAmount, raw)
	}
	if len(s) > MaxIntegerDigits+MaxFractionDigits+2 {
		return decimal.Zero, reject(ReasonAmountTooLarge, raw)
	}

	m := plainDecimal.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, reject(ReasonInvalidAmount, raw)
	}
	sign, whole, frac := m[1], strings.TrimLeft(m[2], "0"), m[3]
	if m[2] == "" && frac == "" {
		return decimal.Zero, reject(ReasonInvalidAmount, raw)
	}
	if len(whole) > MaxIntegerDigits {
		return decimal.Zero, reject(ReasonAmountTooLarge, raw)
	}
	if len(frac) > MaxFractionDigits {
		return decimal.Zero, reject(ReasonInvalidAmount, raw)
	}

	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "0"
	}
	if sign == "+" {
		sign = ""
	}
	return decimal.RequireFromString(sign + whole + "." + frac), nil
}
