package schedule

import (
	"reflect"
	"testing"
)

func TestAvailableDatesExcludesBlocked(t *testing.T) {
	blocked := BlocklistFromDates([]string{"2024-12-25"})
	got := AvailableDates(MustDate(2024, 12, 24), 7, blocked)
	want := []string{
		"2024-12-24",
		"2024-12-26",
		"2024-12-27",
		"2024-12-28",
		"2024-12-29",
		"2024-12-30",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestAvailableDatesWindowEdge(t *testing.T) {
	if got := AvailableDates(MustDate(2024, 12, 24), 0, nil); len(got) != 0 {
		t.Fatalf("window 0 should be empty, got %v", got)
	}
	if got := AvailableDates(MustDate(2024, 12, 24), -3, nil); len(got) != 0 {
		t.Fatalf("negative window should be empty, got %v", got)
	}
	got := AvailableDates(MustDate(2024, 12, 30), 4, nil)
	want := []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("year rollover: got %v want %v", got, want)
	}
}

func TestBlocklistFromDatesDropsMalformed(t *testing.T) {
	blocked := BlocklistFromDates([]string{"2024-12-25", "31/02/2024", "garbage", "26/12/2024"})
	if len(blocked) != 2 {
		t.Fatalf("expected 2 valid entries got %d", len(blocked))
	}
	if !blocked.Contains(MustDate(2024, 12, 26)) {
		t.Fatal("DD/MM/YYYY entry should be normalized into the blocklist")
	}
	if blocked.Contains(MustDate(2024, 2, 29)) {
		t.Fatal("unexpected date in blocklist")
	}
}

func TestBlocklistFromRules(t *testing.T) {
	rules := []DateDisableRule{
		{StartDate: "2024-12-24", EndDate: "2024-12-26"},  // all cities
		{CityId: 2, StartDate: "2024-12-31"},              // other city only
		{CityId: 1, StartDate: "2025-01-01"},              // our city
		{StartDate: "bogus", EndDate: "2024-12-30"},       // skipped
	}
	blocked := BlocklistFromRules(rules, 1)

	for _, iso := range []string{"2024-12-24", "2024-12-25", "2024-12-26", "2025-01-01"} {
		d, _ := ParseISO(iso)
		if !blocked.Contains(d) {
			t.Errorf("expected %s blocked", iso)
		}
	}
	if blocked.Contains(MustDate(2024, 12, 31)) {
		t.Error("rule for city 2 must not block city 1")
	}
	if blocked.Contains(MustDate(2024, 12, 30)) {
		t.Error("malformed rule should be skipped entirely")
	}

	// No city selected: city-restricted rules do not apply.
	anyCity := BlocklistFromRules(rules, 0)
	if anyCity.Contains(MustDate(2025, 1, 1)) {
		t.Error("city-scoped rule should not block when no city matches")
	}
	if !anyCity.Contains(MustDate(2024, 12, 25)) {
		t.Error("global rule should block regardless of city")
	}
}
