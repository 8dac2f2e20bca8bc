package utils

import (
	"math"
	"mediconnect-service/internal/pkg/exceptions"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyExponents lists ISO 4217 currencies whose minor unit is not 1/100.
var currencyExponents = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"IDR": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
}

func CurrencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// ToMinorUnits converts a whole-unit amount into the smallest unit of currency.
// It fails when the result does not fit in an int64.
func ToMinorUnits(amount int64, currency string) (int64, error) {
	minor := decimal.NewFromInt(amount).Shift(CurrencyExponent(currency))
	if !minor.IsInteger() || minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return 0, exceptions.ErrAmountOutOfRange(amount, currency)
	}
	return minor.IntPart(), nil
}

// FormatMinorUnits renders a minor-unit amount for display, e.g. 49900 INR -> "INR 499.00".
func FormatMinorUnits(minor int64, currency string) string {
	exp := CurrencyExponent(currency)
	return strings.ToUpper(currency) + " " + decimal.New(minor, -exp).StringFixed(exp)
}
