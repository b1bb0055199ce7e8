package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
)

// Progress is a completion percentage.
//
// It is backed by a decimal so that contributions like 33.3 + 33.3 + 33.4
// add up to exactly 100 and complete a goal.
type Progress struct {
	value decimal.Decimal
}

// P returns the Progress for a given percentage value.
func P[T float64 | int | int64 | decimal.Decimal](value T) Progress {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Progress{value: v}
	case float64:
		return Progress{value: decimal.NewFromFloat(v)}
	case int:
		return Progress{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Progress{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseProgress parses a percentage like "60" or "12.5".
func ParseProgress(s string) (Progress, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Progress{}, fmt.Errorf("invalid progress %q: %w", s, err)
	}
	return Progress{value: d}, nil
}

func (p Progress) Add(q Progress) Progress  { return Progress{value: p.value.Add(q.value)} }
func (p Progress) Equal(q Progress) bool    { return p.value.Equal(q.value) }
func (p Progress) LessThan(q Progress) bool { return p.value.LessThan(q.value) }
func (p Progress) IsZero() bool             { return p.value.IsZero() }
func (p Progress) String() string           { return p.value.String() }
func (p Progress) Decimal() decimal.Decimal { return p.value }

// Complete reports whether p reached 100%.
func (p Progress) Complete() bool { return p.value.GreaterThanOrEqual(hundred) }

// Percent formats p rounded to the unit, like "42%".
func (p Progress) Percent() string { return p.value.Round(0).String() + "%" }

// Float64 returns p as a float, for scaling and display.
func (p Progress) Float64() float64 {
	f, _ := p.value.Float64()
	return f
}

// Clamp returns p restricted to the [0, 100] range.
func (p Progress) Clamp() Progress {
	switch {
	case p.value.IsNegative():
		return Progress{}
	case p.value.GreaterThan(hundred):
		return Progress{value: hundred}
	}
	return p
}

// MarshalJSON writes the progress as a plain JSON number.
func (p Progress) MarshalJSON() ([]byte, error) {
	return []byte(p.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted number.
func (p *Progress) UnmarshalJSON(b []byte) error {
	return p.value.UnmarshalJSON(b)
}
