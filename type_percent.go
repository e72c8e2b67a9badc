package bankist

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent points (1.2 means 1.2%).
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

var hundred = decimal.NewFromInt(100)

// Of applies the rate to an amount: P(1.2).Of(M(1000, "EUR")) is 12 EUR.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(hundred), cur: m.cur}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsNegative() bool     { return p.value.IsNegative() }

func (p Percent) String() string {
	return fmt.Sprintf("%s%%", p.value.String())
}

func (p Percent) MarshalJSON() ([]byte, error)     { return p.value.MarshalJSON() }
func (p *Percent) UnmarshalJSON(data []byte) error { return p.value.UnmarshalJSON(data) }
