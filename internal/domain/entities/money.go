package entities

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidMoneyFormat = errors.New("invalid money format")

// MoneyFormat controls how minor-unit amounts are rendered on the wire.
type MoneyFormat string

const (
	MoneyFormatDollars MoneyFormat = "dollars"
	MoneyFormatCents   MoneyFormat = "cents"
)

func ParseMoneyFormat(s string) (MoneyFormat, error) {
	switch MoneyFormat(strings.ToLower(strings.TrimSpace(s))) {
	case MoneyFormatDollars:
		return MoneyFormatDollars, nil
	case MoneyFormatCents:
		return MoneyFormatCents, nil
	}
	return "", ErrInvalidMoneyFormat
}

// Format renders cents as "10.00" (dollars) or "1000" (cents).
// A nil amount renders as an empty string.
func (f MoneyFormat) Format(cents *int64) string {
	if cents == nil {
		return ""
	}
	if f == MoneyFormatCents {
		return strconv.FormatInt(*cents, 10)
	}
	return decimal.New(*cents, -2).StringFixed(2)
}
