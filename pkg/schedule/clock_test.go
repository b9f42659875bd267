package schedule

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want ClockTime
		ok   bool
	}{
		{"14:00", ClockTime{14, 0}, true},
		{"9:30", ClockTime{9, 30}, true},
		{"00:00", ClockTime{0, 0}, true},
		{"23:59", ClockTime{23, 59}, true},
		{"24:00", ClockTime{}, false},
		{"12:60", ClockTime{}, false},
		{"12", ClockTime{}, false},
		{"12:00:00", ClockTime{}, false},
		{"", ClockTime{}, false},
		{"ab:cd", ClockTime{}, false},
	}
	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseClock(%q) unexpected error: %v", tc.in, err)
			} else if !got.Equal(tc.want) {
				t.Errorf("ParseClock(%q) = %v want %v", tc.in, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("ParseClock(%q) expected error, got %v", tc.in, got)
		}
	}
}

func TestParseClockSentinels(t *testing.T) {
	if _, err := NewClockTime(24, 0); !errors.Is(err, ErrHourOutOfRange) {
		t.Fatalf("expected ErrHourOutOfRange got %v", err)
	}
	if _, err := NewClockTime(12, 60); !errors.Is(err, ErrMinuteOutOfRange) {
		t.Fatalf("expected ErrMinuteOutOfRange got %v", err)
	}
	if _, err := ParseClock("nope"); !errors.Is(err, ErrInvalidClockString) {
		t.Fatalf("expected ErrInvalidClockString got %v", err)
	}
}

func TestClockCompare(t *testing.T) {
	tests := []struct {
		a, b ClockTime
		want int
	}{
		{ClockTime{9, 0}, ClockTime{10, 0}, -1},
		{ClockTime{10, 15}, ClockTime{10, 15}, 0},
		{ClockTime{10, 16}, ClockTime{10, 15}, 1},
		{ClockTime{23, 59}, ClockTime{0, 0}, 1},
	}
	for _, tc := range tests {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Errorf("%v.Compare(%v) = %d want %d", tc.a, tc.b, got, tc.want)
		}
	}
	if (ClockTime{14, 0}).String() != "14:00" {
		t.Fatal("String format broken")
	}
}
