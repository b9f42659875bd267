package schedule

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 12, 24, hour, minute, 0, 0, time.Local)
}

func TestBeforeCutoff(t *testing.T) {
	tests := []struct {
		cutoff string
		now    time.Time
		want   bool
	}{
		{"14:00", at(10, 0), true},
		{"14:00", at(13, 59), true},
		{"14:00", at(14, 0), false}, // strict comparison
		{"14:00", at(15, 0), false},
		{"23:59", at(23, 58), true},
		{"23:59", at(23, 59), false},
		{"garbage", at(0, 0), false}, // unparseable fails safe
		{"25:00", at(0, 0), false},
	}
	for _, tc := range tests {
		if got := BeforeCutoff(tc.cutoff, tc.now); got != tc.want {
			t.Errorf("BeforeCutoff(%q, %s) = %v want %v", tc.cutoff, tc.now.Format("15:04"), got, tc.want)
		}
	}
}

func TestEffectiveCutoff(t *testing.T) {
	if got := EffectiveCutoff(DeliveryCity{Id: 1, CutoffTime: "12:30"}); got != "12:30" {
		t.Fatalf("expected configured cutoff got %s", got)
	}
	if got := EffectiveCutoff(DeliveryCity{Id: 1}); got != DefaultCutoffTime {
		t.Fatalf("expected default cutoff got %s", got)
	}
}

func TestMinimumDeliveryDate(t *testing.T) {
	city := DeliveryCity{Id: 1, Name: "Alexandria", CutoffTime: "14:00"}
	tests := []struct {
		name      string
		now       time.Time
		cartDelay int
		want      string
	}{
		{"before cutoff, no delay", at(10, 0), 0, "2024-12-24"},
		{"after cutoff, no delay", at(15, 0), 0, "2024-12-25"},
		{"before cutoff with delay", at(10, 0), 2, "2024-12-26"},
		{"after cutoff with delay", at(15, 0), 2, "2024-12-27"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MinimumDeliveryDate(city, tc.now, tc.cartDelay).ISO(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}

	// No cutoff configured: same-day until end of day.
	open := DeliveryCity{Id: 2, Name: "Cairo"}
	if got := MinimumDeliveryDate(open, at(23, 0), 0).ISO(); got != "2024-12-24" {
		t.Fatalf("default cutoff should allow same day, got %s", got)
	}
}

func TestTimeUntilCutoff(t *testing.T) {
	city := DeliveryCity{Id: 1, CutoffTime: "14:30"}

	remaining, ok := TimeUntilCutoff(city, at(10, 0))
	if !ok {
		t.Fatal("expected countdown before cutoff")
	}
	if remaining.Hour != 4 || remaining.Minute != 30 {
		t.Fatalf("expected 4h30m got %v", remaining)
	}

	if _, ok := TimeUntilCutoff(city, at(14, 30)); ok {
		t.Fatal("expected no countdown at cutoff")
	}
	if _, ok := TimeUntilCutoff(DeliveryCity{Id: 2, CutoffTime: "broken"}, at(10, 0)); ok {
		t.Fatal("expected no countdown for unparseable cutoff")
	}
}
