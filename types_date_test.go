package finance

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("ParseDate() = %v", d)
	}
	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Error("ParseDate() should reject the interchange form")
	}
}

func TestParseImportDate(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Date
	}{
		{"interchange form", "15/03/2024", NewDate(2024, time.March, 15)},
		{"unpadded day and month", "1/2/2024", NewDate(2024, time.February, 1)},
		{"unpadded day only", "5/12/2024", NewDate(2024, time.December, 5)},
		{"storage form passes through", "2024-03-15", NewDate(2024, time.March, 15)},
		{"padded", " 15/03/2024 ", NewDate(2024, time.March, 15)},
		{"garbage falls back to today", "soon", Today()},
		{"empty falls back to today", "", Today()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseImportDate(tc.in); got != tc.want {
				t.Errorf("ParseImportDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_ExportRoundTrip(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	if got := d.Export(); got != "05/01/2024" {
		t.Errorf("Export() = %q, want 05/01/2024", got)
	}
	if got := ParseImportDate(d.Export()); got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestParseDaytime(t *testing.T) {
	testCases := []struct {
		in   string
		want Daytime
	}{
		{"14:30", "14:30"},
		{" 09:05 ", "09:05"},
		{"", Daytime(DefaultTime)},
		{"25:00", Daytime(DefaultTime)},
		{"noonish", Daytime(DefaultTime)},
	}
	for _, tc := range testCases {
		if got := ParseDaytime(tc.in); got != tc.want {
			t.Errorf("ParseDaytime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Start: MustParseDate("2024-03-01"), End: MustParseDate("2024-03-31"), Account: "1"}

	testCases := []struct {
		name string
		tx   Transaction
		want bool
	}{
		{"inside", Transaction{Date: MustParseDate("2024-03-15"), Account: "1"}, true},
		{"start inclusive", Transaction{Date: MustParseDate("2024-03-01"), Account: "1"}, true},
		{"end inclusive", Transaction{Date: MustParseDate("2024-03-31"), Account: "1"}, true},
		{"before", Transaction{Date: MustParseDate("2024-02-29"), Account: "1"}, false},
		{"after", Transaction{Date: MustParseDate("2024-04-01"), Account: "1"}, false},
		{"wrong account", Transaction{Date: MustParseDate("2024-03-15"), Account: "2"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.tx); got != tc.want {
				t.Errorf("Contains() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestThisMonth(t *testing.T) {
	r := ThisMonth()
	today := Today()
	if r.Start.Day() != 1 || r.Start.Month() != today.Month() {
		t.Errorf("Start = %v", r.Start)
	}
	if r.End.Before(today) {
		t.Errorf("End = %v is before today", r.End)
	}
}
