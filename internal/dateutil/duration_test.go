package dateutil

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

// ---------------------------------------------------------------------------
// TestParseDuration - Human duration grammar
// ---------------------------------------------------------------------------

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Duration
		wantErr error
	}{
		{name: "one day", input: "1 day", want: Duration{Days: 1}},
		{name: "plural days", input: "10 days", want: Duration{Days: 10}},
		{name: "singular form with larger amount", input: "3 day", want: Duration{Days: 3}},
		{name: "weeks are seven days", input: "2 weeks", want: Duration{Days: 14}},
		{name: "month", input: "1 month", want: Duration{Months: 1}},
		{name: "years are twelve months", input: "2 years", want: Duration{Months: 24}},
		{name: "uppercase unit", input: "3 WEEKS", want: Duration{Days: 21}},
		{name: "mixed case unit", input: "1 Month", want: Duration{Months: 1}},
		{name: "several spaces", input: "4   days", want: Duration{Days: 4}},
		{name: "surrounding spaces", input: " 5 days ", want: Duration{Days: 5}},
		{name: "zero amount", input: "0 days", want: Duration{}},
		{name: "missing unit", input: "5", wantErr: ErrInvalidDuration},
		{name: "missing amount", input: "days", wantErr: ErrInvalidDuration},
		{name: "no space", input: "5days", wantErr: ErrInvalidDuration},
		{name: "unknown unit", input: "2 fortnights", wantErr: ErrInvalidDuration},
		{name: "hours are not supported", input: "3 hours", wantErr: ErrInvalidDuration},
		{name: "negative amount", input: "-1 day", wantErr: ErrInvalidDuration},
		{name: "fractional amount", input: "1.5 weeks", wantErr: ErrInvalidDuration},
		{name: "amount too large", input: "100001 days", wantErr: ErrInvalidDuration},
		{name: "empty", input: "", wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDuration(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDurationAddTo - Calendar arithmetic with month clamping
// ---------------------------------------------------------------------------

func TestDurationAddTo(t *testing.T) {
	t.Parallel()

	date := func(y int, m time.Month, d int) civil.Date {
		return civil.Date{Year: y, Month: m, Day: d}
	}

	tests := []struct {
		name     string
		duration string
		from     civil.Date
		want     civil.Date
	}{
		{name: "one day", duration: "1 day", from: date(2022, time.July, 30), want: date(2022, time.July, 31)},
		{name: "day crosses month", duration: "2 days", from: date(2022, time.July, 30), want: date(2022, time.August, 1)},
		{name: "one week", duration: "1 week", from: date(2022, time.July, 30), want: date(2022, time.August, 6)},
		{name: "two weeks", duration: "2 weeks", from: date(2022, time.March, 2), want: date(2022, time.March, 16)},
		{name: "one month keeps day", duration: "1 month", from: date(2022, time.July, 30), want: date(2022, time.August, 30)},
		{name: "month crosses year", duration: "2 months", from: date(2022, time.November, 15), want: date(2023, time.January, 15)},
		{name: "clamp to leap february", duration: "1 month", from: date(2024, time.January, 31), want: date(2024, time.February, 29)},
		{name: "clamp to february", duration: "1 month", from: date(2023, time.January, 31), want: date(2023, time.February, 28)},
		{name: "clamp to thirty days", duration: "1 month", from: date(2022, time.March, 31), want: date(2022, time.April, 30)},
		{name: "one year", duration: "1 year", from: date(2022, time.March, 1), want: date(2023, time.March, 1)},
		{name: "leap day plus one year", duration: "1 year", from: date(2020, time.February, 29), want: date(2021, time.February, 28)},
		{name: "twelve months equals one year", duration: "12 months", from: date(2022, time.May, 12), want: date(2023, time.May, 12)},
		{name: "zero is identity", duration: "0 weeks", from: date(2022, time.May, 12), want: date(2022, time.May, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := ParseDuration(tt.duration)
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tt.duration, err)
			}
			if got := d.AddTo(tt.from); got != tt.want {
				t.Errorf("%q.AddTo(%s) = %s, want %s", tt.duration, tt.from, got, tt.want)
			}
		})
	}
}

func TestDurationAddTo_MonthsBeforeDays(t *testing.T) {
	t.Parallel()

	d := Duration{Months: 1, Days: 1}
	got := d.AddTo(civil.Date{Year: 2023, Month: time.January, Day: 31})
	want := civil.Date{Year: 2023, Month: time.March, Day: 1}
	if got != want {
		t.Errorf("AddTo() = %s, want %s", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestDurationString - Round trip through the parseable form
// ---------------------------------------------------------------------------

func TestDurationString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{}, "0 days"},
		{Duration{Days: 1}, "1 day"},
		{Duration{Days: 3}, "3 days"},
		{Duration{Days: 14}, "2 weeks"},
		{Duration{Months: 1}, "1 month"},
		{Duration{Months: 24}, "2 years"},
		{Duration{Months: 1, Days: 2}, "1 month 2 days"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.d, got, tt.want)
		}
		if tt.d.Days != 0 && tt.d.Months != 0 {
			continue
		}
		parsed, err := ParseDuration(tt.want)
		if err != nil {
			t.Errorf("ParseDuration(%q) unexpected error: %v", tt.want, err)
			continue
		}
		if parsed != tt.d {
			t.Errorf("ParseDuration(%q) = %+v, want %+v", tt.want, parsed, tt.d)
		}
	}
}
