package moneybook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_KRWFormatting(t *testing.T) {
	testCases := []struct {
		value int64
		want  string
	}{
		{value: 0, want: "₩0"},
		{value: 4500, want: "₩4,500"},
		{value: 1565500, want: "₩1,565,500"},
		{value: -4500, want: "-₩4,500"},
	}
	for _, tc := range testCases {
		got := KRW(decimal.NewFromInt(tc.value)).String()
		if got != tc.want {
			t.Errorf("KRW(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	m := KRW(decimal.NewFromInt(4500))
	if got := m.SignedString(Income); got != "+₩4,500" {
		t.Errorf("income sign = %q", got)
	}
	if got := m.SignedString(Expense); got != "-₩4,500" {
		t.Errorf("expense sign = %q", got)
	}
	if got := m.SignedString(Saving); got != "-₩4,500" {
		t.Errorf("saving sign = %q", got)
	}
}

func TestMoney_OtherCurrencyFraction(t *testing.T) {
	// EUR keeps two fraction digits where KRW keeps none.
	m := M(decimal.NewFromFloat(12.34), "EUR")
	if got := m.String(); got != "€12.34" {
		t.Errorf("EUR = %q", got)
	}
}
