package cmd

import (
	"testing"
	"time"

	"github.com/hyejin/moneybook/date"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		year    int
		month   time.Month
		wantErr bool
	}{
		{in: "2024-03", year: 2024, month: time.March},
		{in: "2024-3", year: 2024, month: time.March},
		{in: "2024-12", year: 2024, month: time.December},
		{in: "2024-13", wantErr: true},
		{in: "2024", wantErr: true},
		{in: "march", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			year, month, err := parseMonth(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseMonth(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && (year != tc.year || month != tc.month) {
				t.Errorf("parseMonth(%q) = %d, %s", tc.in, year, month)
			}
		})
	}
}

func TestPeriodWindow(t *testing.T) {
	testCases := []struct {
		name    string
		flags   periodFlags
		want    string
		none    bool
		wantErr bool
	}{
		{name: "no flags", flags: periodFlags{payday: 1}, none: true},
		{name: "month", flags: periodFlags{month: "2024-03", payday: 1}, want: "2024-03-01..2024-03-31"},
		{name: "month with payday", flags: periodFlags{month: "2024-03", payday: 25}, want: "2024-03-25..2024-04-24"},
		{name: "payday out of range", flags: periodFlags{month: "2024-02", payday: 31}, want: "2024-02-01..2024-02-29"},
		{name: "year", flags: periodFlags{year: 2024, payday: 1}, want: "2024-01-01..2024-12-31"},
		{name: "from and to", flags: periodFlags{from: "2024-03-01", to: "2024-03-15", payday: 1}, want: "2024-03-01..2024-03-15"},
		{name: "reversed range is swapped", flags: periodFlags{from: "2024-03-15", to: "2024-03-01", payday: 1}, want: "2024-03-01..2024-03-15"},
		{name: "month and year conflict", flags: periodFlags{month: "2024-03", year: 2023, payday: 1}, wantErr: true},
		{name: "bad month", flags: periodFlags{month: "soon", payday: 1}, wantErr: true},
		{name: "bad from", flags: periodFlags{from: "soon", payday: 1}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, ok, err := tc.flags.window()
			if (err != nil) != tc.wantErr {
				t.Fatalf("window() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if ok == tc.none {
				t.Fatalf("window() ok = %v", ok)
			}
			if ok && r.String() != tc.want {
				t.Errorf("window() = %s, want %s", r, tc.want)
			}
		})
	}
}

func TestPeriodWindowContainsPaydayBoundaries(t *testing.T) {
	p := periodFlags{month: "2024-03", payday: 25}
	r, ok, err := p.window()
	if err != nil || !ok {
		t.Fatalf("window() = %v, %v", ok, err)
	}
	if !r.Contains(date.MustParse("2024-03-25")) || !r.Contains(date.MustParse("2024-04-24")) {
		t.Errorf("boundaries excluded from %s", r)
	}
	if r.Contains(date.MustParse("2024-03-24")) || r.Contains(date.MustParse("2024-04-25")) {
		t.Errorf("window %s leaks outside the payday month", r)
	}
}
