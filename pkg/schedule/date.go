package schedule

/*
 * Calendar date, no time-of-day, no timezone. All scheduling logic
 * normalizes to the canonical YYYY-MM-DD string before comparing.
 */

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a local civil calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Sentinel errors (wrapped by Validate and the parsers).
var (
	ErrYearOutOfRange  = errors.New("date: year out of range (1..9999)")
	ErrMonthOutOfRange = errors.New("date: month out of range (1..12)")
	ErrDayOutOfRange   = errors.New("date: day out of range for month")
	ErrInvalidDate     = errors.New("date: unrecognized date string")
)

// NewDate validates and returns a Date.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// MustDate panics on invalid date (convenience for constants / tests).
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromTime constructs a Date from a time.Time's calendar fields.
func DateFromTime(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// IsZero returns true if all fields are zero (uninitialized struct).
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Validate checks the date fields for logical correctness. Day is checked
// against the real month length, so Feb 31 and Apr 31 are rejected.
func (d Date) Validate() error {
	if d.Year < 1 || d.Year > 9999 {
		return fmt.Errorf("%w: %d", ErrYearOutOfRange, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: %d", ErrMonthOutOfRange, d.Month)
	}
	dim := daysInMonth(d.Year, d.Month)
	if d.Day < 1 || d.Day > dim {
		return fmt.Errorf("%w: got %d, max %d (year=%d month=%d)", ErrDayOutOfRange, d.Day, dim, d.Year, d.Month)
	}
	return nil
}

// Time returns a time.Time at local midnight for this date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// ISO returns the canonical YYYY-MM-DD string.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String implements fmt.Stringer (same as ISO()).
func (d Date) String() string {
	return d.ISO()
}

// AddDays returns a new Date offset by n days (can be negative).
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return DateFromTime(t)
}

// Before returns true if d is chronologically before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After returns true if d is chronologically after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal compares for exact date equality.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// ParseISO parses a YYYY-MM-DD string into a Date.
func ParseISO(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad year in %q", ErrInvalidDate, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad month in %q", ErrInvalidDate, s)
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad day in %q", ErrInvalidDate, s)
	}
	return NewDate(y, m, d)
}

// ParseEuropean parses a DD/MM/YYYY string into a Date.
func ParseEuropean(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad day in %q", ErrInvalidDate, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad month in %q", ErrInvalidDate, s)
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad year in %q", ErrInvalidDate, s)
	}
	return NewDate(y, m, d)
}

// ParseDate accepts either canonical YYYY-MM-DD or DD/MM/YYYY.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		return ParseEuropean(s)
	}
	return ParseISO(s)
}

// NormalizeDate parses either accepted format and returns the canonical
// YYYY-MM-DD form. Impossible calendar dates (Feb 31, month 13) fail.
func NormalizeDate(s string) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.ISO(), nil
}

// daysInMonth returns number of days in a given month/year.
func daysInMonth(year, month int) int {
	// Use time.Date trick: day 0 of next month = last day of this month
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
