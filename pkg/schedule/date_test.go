package schedule

import (
	"errors"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-12-25", "2024-12-25", true},
		{"25/12/2024", "2024-12-25", true},
		{"1/2/2024", "2024-02-01", true},
		{" 2024-12-25 ", "2024-12-25", true},
		{"31/02/2024", "", false},
		{"2024-13-01", "", false},
		{"2024-04-31", "", false},
		{"2024-02-29", "2024-02-29", true}, // leap year
		{"2023-02-29", "", false},
		{"not-a-date", "", false},
		{"", "", false},
		{"2024/12/25", "", false},
	}
	for _, tc := range tests {
		got, err := NormalizeDate(tc.in)
		if tc.ok && err != nil {
			t.Errorf("NormalizeDate(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("NormalizeDate(%q) expected error, got %q", tc.in, got)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateValidationSentinels(t *testing.T) {
	if _, err := NewDate(2024, 13, 1); !errors.Is(err, ErrMonthOutOfRange) {
		t.Fatalf("expected ErrMonthOutOfRange got %v", err)
	}
	if _, err := NewDate(2024, 2, 31); !errors.Is(err, ErrDayOutOfRange) {
		t.Fatalf("expected ErrDayOutOfRange got %v", err)
	}
	if _, err := NewDate(0, 1, 1); !errors.Is(err, ErrYearOutOfRange) {
		t.Fatalf("expected ErrYearOutOfRange got %v", err)
	}
	if _, err := ParseISO("garbage"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate got %v", err)
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		start Date
		n     int
		want  string
	}{
		{MustDate(2024, 12, 30), 3, "2025-01-02"},
		{MustDate(2024, 2, 28), 1, "2024-02-29"},
		{MustDate(2023, 2, 28), 1, "2023-03-01"},
		{MustDate(2024, 1, 1), -1, "2023-12-31"},
		{MustDate(2024, 6, 15), 0, "2024-06-15"},
	}
	for _, tc := range tests {
		if got := tc.start.AddDays(tc.n).ISO(); got != tc.want {
			t.Errorf("%s.AddDays(%d) = %s want %s", tc.start, tc.n, got, tc.want)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustDate(2024, 12, 24)
	b := MustDate(2024, 12, 25)
	if !a.Before(b) || b.Before(a) {
		t.Fatal("Before broken across days")
	}
	if !b.After(a) {
		t.Fatal("After broken across days")
	}
	if !a.Equal(MustDate(2024, 12, 24)) {
		t.Fatal("Equal broken")
	}
	if MustDate(2023, 12, 31).After(MustDate(2024, 1, 1)) {
		t.Fatal("year ordering broken")
	}
}

func TestParseISORoundTrip(t *testing.T) {
	d, err := ParseISO("2024-12-25")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.ISO() != "2024-12-25" {
		t.Fatalf("round-trip mismatch: %s", d.ISO())
	}
	// Local midnight, not UTC-shifted.
	midnight := d.Time()
	if midnight.Hour() != 0 || midnight.Day() != 25 {
		t.Fatalf("Time() should be local midnight, got %v", midnight)
	}
}
