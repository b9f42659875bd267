package schedule

/*
 * Wall-clock time of day, no date, no timezone. Cutoff times and slot
 * labels use the "HH:mm" form; a single-digit hour is accepted.
 */

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime represents a wall-clock hour and minute.
type ClockTime struct {
	Hour   int
	Minute int
}

// Sentinel errors (wrapped by Validate and ParseClock).
var (
	ErrHourOutOfRange     = errors.New("clock: hour out of range (0..23)")
	ErrMinuteOutOfRange   = errors.New("clock: minute out of range (0..59)")
	ErrInvalidClockString = errors.New("clock: invalid clock string")
)

// NewClockTime constructs and validates a ClockTime.
func NewClockTime(hour, minute int) (ClockTime, error) {
	ct := ClockTime{Hour: hour, Minute: minute}
	if err := ct.Validate(); err != nil {
		return ClockTime{}, err
	}
	return ct, nil
}

// MustClockTime panics on invalid inputs (useful for constants / tests).
func MustClockTime(hour, minute int) ClockTime {
	ct, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return ct
}

// Validate checks the time components.
func (ct ClockTime) Validate() error {
	if ct.Hour < 0 || ct.Hour > 23 {
		return fmt.Errorf("%w: %d", ErrHourOutOfRange, ct.Hour)
	}
	if ct.Minute < 0 || ct.Minute > 59 {
		return fmt.Errorf("%w: %d", ErrMinuteOutOfRange, ct.Minute)
	}
	return nil
}

// String implements fmt.Stringer (HH:mm).
func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// MinutesSinceMidnight returns total minutes from 00:00.
func (ct ClockTime) MinutesSinceMidnight() int {
	return ct.Hour*60 + ct.Minute
}

// Compare returns -1 if ct < other, 0 if equal, +1 if ct > other.
func (ct ClockTime) Compare(other ClockTime) int {
	if ct.Hour != other.Hour {
		if ct.Hour < other.Hour {
			return -1
		}
		return 1
	}
	if ct.Minute != other.Minute {
		if ct.Minute < other.Minute {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports ct < other.
func (ct ClockTime) Before(other ClockTime) bool { return ct.Compare(other) < 0 }

// After reports ct > other.
func (ct ClockTime) After(other ClockTime) bool { return ct.Compare(other) > 0 }

// Equal reports ct == other.
func (ct ClockTime) Equal(other ClockTime) bool { return ct.Compare(other) == 0 }

// ParseClock parses "HH:mm" (or "H:mm") into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ClockTime{}, fmt.Errorf("%w: empty", ErrInvalidClockString)
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}
	toInt := func(p string) (int, error) {
		if p == "" {
			return 0, fmt.Errorf("%w: blank component", ErrInvalidClockString)
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidClockString, err)
		}
		return v, nil
	}
	h, err := toInt(parts[0])
	if err != nil {
		return ClockTime{}, err
	}
	m, err := toInt(parts[1])
	if err != nil {
		return ClockTime{}, err
	}
	return NewClockTime(h, m)
}

// ClockFromTime extracts a ClockTime from a time.Time.
func ClockFromTime(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}
