package moneybook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency for amounts. The account
// book stores plain magnitudes; currency only matters for rendering.
const DefaultCurrency = "KRW"

// Money is a display wrapper pairing a decimal amount with a currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M returns a Money in the given currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// KRW returns a Money in the default currency.
func KRW(value decimal.Decimal) Money { return M(value, DefaultCurrency) }

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with the currency's grapheme and grouping,
// e.g. "₩4,500".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString formats the value prefixed with the sign a transaction
// of the given type contributes to the balance: "+" for income, "-"
// otherwise.
func (m Money) SignedString(ty Type) string {
	if ty == Income {
		return "+" + m.String()
	}
	return "-" + m.String()
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
