package money

import "github.com/shopspring/decimal"

// Round2 rounds half away from zero to two fractional digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FitsCents reports whether d has at most two significant fractional digits,
// the scale hours, distances and amounts are stored with.
func FitsCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2))
}

// Ptr is a helper for optional decimal fields.
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// FirstOf returns the first non-nil value.
func FirstOf(values ...*decimal.Decimal) *decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// PercentDelta returns (current-previous)/|previous|*100 rounded to two
// digits, so a rise is positive even from a negative base. A zero previous
// value has no defined growth and yields nil.
func PercentDelta(current, previous decimal.Decimal) *decimal.Decimal {
	if previous.IsZero() {
		return nil
	}
	delta := current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(100))
	return Ptr(Round2(delta))
}

// Ratio returns num/den rounded to four digits, nil when den is zero.
func Ratio(num, den decimal.Decimal) *decimal.Decimal {
	if den.IsZero() {
		return nil
	}
	return Ptr(num.Div(den).Round(4))
}

// Float converts an optional decimal for JSON responses.
func Float(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
