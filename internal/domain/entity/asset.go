package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
)

// MaxPrecision is the largest number of decimal places a symbol may declare
const MaxPrecision = 18

// maxSymbolCodeLength is the longest symbol code, e.g. "ABCDEFG"
const maxSymbolCodeLength = 7

// Symbol identifies a fungible asset by its code and decimal precision
type Symbol struct {
	Precision uint8
	Code      string
}

// NewSymbol builds a symbol and validates it
func NewSymbol(precision uint8, code string) (Symbol, error) {
	s := Symbol{Precision: precision, Code: code}
	if !s.IsValid() {
		return Symbol{}, fmt.Errorf("%w: %q", errs.ErrInvalidSymbol, s.String())
	}
	return s, nil
}

// ParseSymbol parses the "<precision>,<CODE>" form, e.g. "4,TOK"
func ParseSymbol(text string) (Symbol, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return Symbol{}, fmt.Errorf("%w: %q", errs.ErrInvalidSymbol, text)
	}

	precision, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w: %q", errs.ErrInvalidSymbol, text)
	}

	return NewSymbol(uint8(precision), parts[1])
}

// IsValid reports whether the code is 1-7 uppercase letters and the precision is in range
func (s Symbol) IsValid() bool {
	if s.Precision > MaxPrecision {
		return false
	}
	if len(s.Code) == 0 || len(s.Code) > maxSymbolCodeLength {
		return false
	}
	for _, c := range s.Code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// String returns the "<precision>,<CODE>" form
func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// Quantity is an amount of one asset, stored in its smallest unit
type Quantity struct {
	Amount int64
	Symbol Symbol
}

// ParseQuantity parses "<amount> <CODE>", e.g. "100.0000 TOK".
// The number of decimals written fixes the symbol precision, as on the ledger.
func ParseQuantity(text string) (Quantity, error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return Quantity{}, fmt.Errorf("%w: empty value", errs.ErrInvalidQuantity)
	}

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Quantity{}, fmt.Errorf("%w: expected \"<amount> <SYMBOL>\", got %q", errs.ErrInvalidQuantity, text)
	}

	amountText, code := fields[0], fields[1]
	if strings.HasPrefix(amountText, "-") || strings.HasPrefix(amountText, "+") {
		return Quantity{}, fmt.Errorf("%w: signed amount %q", errs.ErrInvalidQuantity, amountText)
	}

	parts := strings.Split(amountText, ".")
	if len(parts) > 2 || len(parts[0]) == 0 {
		return Quantity{}, fmt.Errorf("%w: invalid number format %q", errs.ErrInvalidQuantity, amountText)
	}

	digits := parts[0]
	precision := 0
	if len(parts) == 2 {
		if len(parts[1]) == 0 {
			return Quantity{}, fmt.Errorf("%w: invalid number format %q", errs.ErrInvalidQuantity, amountText)
		}
		precision = len(parts[1])
		digits += parts[1]
	}
	if precision > MaxPrecision {
		return Quantity{}, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidSymbol, MaxPrecision)
	}

	symbol, err := NewSymbol(uint8(precision), code)
	if err != nil {
		return Quantity{}, err
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %s", errs.ErrInvalidQuantity, err.Error())
	}

	return Quantity{Amount: amount, Symbol: symbol}, nil
}

// IsPositive reports whether the quantity carries a strictly positive amount
func (q Quantity) IsPositive() bool {
	return q.Amount > 0
}

// String formats the quantity with exactly Symbol.Precision decimals
func (q Quantity) String() string {
	amount := q.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	precision := int(q.Symbol.Precision)
	if precision == 0 {
		return sign + digits + " " + q.Symbol.Code
	}

	for len(digits) <= precision {
		digits = "0" + digits
	}
	cut := len(digits) - precision
	return sign + digits[:cut] + "." + digits[cut:] + " " + q.Symbol.Code
}
