package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// MaxDurationAmount bounds the integer part of a duration so that
// day and month arithmetic cannot overflow.
const MaxDurationAmount = 100000

// durationPattern matches "<integer> <unit>" with any run of spaces between.
var durationPattern = regexp.MustCompile(`^(\d+)\s+([A-Za-z]+)$`)

// Duration is a calendar offset. Months are applied before days so that
// month arithmetic keeps the day of month where the target month allows it.
type Duration struct {
	Days   int
	Months int
}

// ParseDuration parses a human duration such as "1 day", "2 weeks",
// "1 month" or "3 years". Units are case-insensitive and the trailing "s"
// is optional. Weeks are 7 days and years are 12 months.
// Returns ErrInvalidDuration for any other shape or unit.
func ParseDuration(s string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Duration{}, fmt.Errorf("%w: %q (expected \"<n> days|weeks|months|years\")", ErrInvalidDuration, s)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n > MaxDurationAmount {
		return Duration{}, fmt.Errorf("%w: %q (amount must be at most %d)", ErrInvalidDuration, s, MaxDurationAmount)
	}

	switch strings.TrimSuffix(strings.ToLower(m[2]), "s") {
	case "day":
		return Duration{Days: n}, nil
	case "week":
		return Duration{Days: n * 7}, nil
	case "month":
		return Duration{Months: n}, nil
	case "year":
		return Duration{Months: n * 12}, nil
	}
	return Duration{}, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidDuration, m[2], s)
}

// IsZero reports whether d does not move a date.
func (d Duration) IsZero() bool {
	return d.Days == 0 && d.Months == 0
}

// AddTo advances date by d. When the source day does not exist in the
// target month, the day is clamped to the last day of that month
// (Jan 31 + 1 month = Feb 28, or Feb 29 in leap years).
func (d Duration) AddTo(date civil.Date) civil.Date {
	if d.Months != 0 {
		total := int(date.Month) - 1 + d.Months
		year := date.Year + total/12
		month := time.Month(total%12 + 1)
		date = civil.Date{
			Year:  year,
			Month: month,
			Day:   min(date.Day, DaysIn(year, month)),
		}
	}
	if d.Days != 0 {
		date = date.AddDays(d.Days)
	}
	return date
}

// String returns the duration in its parseable form.
func (d Duration) String() string {
	switch {
	case d.IsZero():
		return "0 days"
	case d.Days == 0 && d.Months%12 == 0:
		return plural(d.Months/12, "year")
	case d.Days == 0:
		return plural(d.Months, "month")
	case d.Months == 0 && d.Days%7 == 0:
		return plural(d.Days/7, "week")
	case d.Months == 0:
		return plural(d.Days, "day")
	}
	return plural(d.Months, "month") + " " + plural(d.Days, "day")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
