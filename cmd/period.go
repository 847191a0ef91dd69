package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hyejin/moneybook/date"
)

// periodFlags are the reporting-window flags shared by the commands
// that can restrict themselves to a period.
type periodFlags struct {
	month  string
	year   int
	from   string
	to     string
	payday int
}

func (p *periodFlags) register(f *flag.FlagSet) {
	f.StringVar(&p.month, "month", "", "Restrict to one month (yyyy-mm).")
	f.IntVar(&p.year, "year", 0, "Restrict to one calendar year.")
	f.StringVar(&p.from, "from", "", "Start date of a custom range (yyyy-mm-dd).")
	f.StringVar(&p.to, "to", "", "End date of a custom range, defaults to today.")
	f.IntVar(&p.payday, "payday", 1, "Day the month starts on (1..28). Applies to -month.")
}

// window resolves the flags into a date range. ok is false when no
// period flag was given and the whole book applies.
func (p *periodFlags) window() (r date.Range, ok bool, err error) {
	given := 0
	if p.month != "" {
		given++
	}
	if p.year != 0 {
		given++
	}
	if p.from != "" || p.to != "" {
		given++
	}
	if given == 0 {
		return date.Range{}, false, nil
	}
	if given > 1 {
		return date.Range{}, false, fmt.Errorf("-month, -year and -from/-to are mutually exclusive")
	}

	switch {
	case p.month != "":
		year, month, err := parseMonth(p.month)
		if err != nil {
			return date.Range{}, false, err
		}
		return date.MonthRange(year, month, p.payday), true, nil

	case p.year != 0:
		return date.YearRange(p.year), true, nil

	default:
		to := date.Today()
		if p.to != "" {
			if to, err = date.Parse(p.to); err != nil {
				return date.Range{}, false, fmt.Errorf("cannot parse -to: %w", err)
			}
		}
		from := to
		if p.from != "" {
			if from, err = date.Parse(p.from); err != nil {
				return date.Range{}, false, fmt.Errorf("cannot parse -from: %w", err)
			}
		}
		return date.NewRange(from, to), true, nil
	}
}

// parseMonth splits a yyyy-mm string.
func parseMonth(s string) (int, time.Month, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("cannot parse month %q, want yyyy-mm", s)
	}
	year, yerr := strconv.Atoi(parts[0])
	month, merr := strconv.Atoi(parts[1])
	if yerr != nil || merr != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("cannot parse month %q, want yyyy-mm", s)
	}
	return year, time.Month(month), nil
}
