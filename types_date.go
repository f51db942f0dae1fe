package finance

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the storage representation of dates, ISO-8601.
const DateFormat = "2006-01-02"

// ImportDateFormat is the interchange representation used by tabular
// import/export files.
const ImportDateFormat = "02/01/2006"

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a date in the storage form YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// MustParseDate parses a storage-form date and panics on error. Test helper.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseImportDate parses a date cell from a tabular import. It accepts the
// interchange form DD/MM/YYYY with or without zero padding, passes through
// the storage form YYYY-MM-DD, and falls back to today for anything else.
func ParseImportDate(s string) Date {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateFormat, s); err == nil {
		return NewDate(t.Date())
	}
	// "2/1/2006" also matches the zero-padded form.
	if t, err := time.Parse("2/1/2006", s); err == nil {
		return NewDate(t.Date())
	}
	return Today()
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in the storage form YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Export formats the date in the interchange form DD/MM/YYYY.
func (d Date) Export() string { return d.time().Format(ImportDateFormat) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DefaultTime is the time-of-day assumed when an import row has none.
const DefaultTime = "12:00"

// Daytime is a time of day in HH:MM form, stored as text the way the
// snapshot format does. The zero value renders as DefaultTime.
type Daytime string

// ParseDaytime validates an HH:MM string, falling back to DefaultTime when
// the cell is empty or malformed.
func ParseDaytime(s string) Daytime {
	s = strings.TrimSpace(s)
	if _, err := time.Parse("15:04", s); err != nil {
		return Daytime(DefaultTime)
	}
	return Daytime(s)
}

func (t Daytime) String() string {
	if t == "" {
		return DefaultTime
	}
	return string(t)
}

// Range is a date interval with optional account and category filters,
// used to select transactions for reports.
type Range struct {
	Start    Date
	End      Date
	Account  string // account id, empty matches all
	Category string // category id, empty matches all
}

// ThisMonth returns a Range covering the current calendar month.
func ThisMonth() Range {
	today := Today()
	return Range{Start: today.StartOfMonth(), End: today.EndOfMonth()}
}

// Contains reports whether the transaction falls inside the range and
// matches its account and category filters.
func (r Range) Contains(tx Transaction) bool {
	if !r.Start.IsZero() && tx.Date.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && tx.Date.After(r.End) {
		return false
	}
	if r.Account != "" && tx.Account != r.Account {
		return false
	}
	if r.Category != "" && tx.Category != r.Category {
		return false
	}
	return true
}
