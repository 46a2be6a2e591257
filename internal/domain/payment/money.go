package payment

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (e.g. 25.50) to minor currency
// units (2550). Fractions below one cent are truncated, matching the
// gateway's integer wire format.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).IntPart()
}

// ToMajorUnits converts a minor-unit amount (e.g. 2550) back to major units
// (25.50).
func ToMajorUnits(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(hundred)
}
