package date

import (
	"fmt"
	"time"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the inclusive range between from and to.
// The boundaries are swapped if given in reverse.
func NewRange(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains reports whether the date is included in the range
// (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// MonthRange returns the budgeting window for a month.
//
// With payday 1 the window is the calendar month. With a later payday
// the window runs from the payday of that month to the day before the
// next payday: MonthRange(2024, time.March, 25) is 2024-03-25 to
// 2024-04-24, the money received on the March payday.
func MonthRange(year int, month time.Month, payday int) Range {
	if payday < 1 || payday > 28 {
		payday = 1
	}
	from := New(year, month, payday)
	to := New(year, month+1, payday-1)
	return Range{From: from, To: to}
}

// YearRange returns the calendar year as a range.
func YearRange(year int) Range {
	return Range{From: New(year, time.January, 1), To: New(year, time.December, 31)}
}
