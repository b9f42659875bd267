package schedule

import "testing"

var (
	morningSlot = TimeSlot{Id: 1, Label: "Morning", StartTime: "09:00", EndTime: "12:00", Active: true}
	eveningSlot = TimeSlot{Id: 2, Label: "Evening", StartTime: "17:00", EndTime: "21:00", Active: true}
	retiredSlot = TimeSlot{Id: 3, Label: "Night", StartTime: "21:00", EndTime: "23:00", Active: false}
)

func TestResolveSlotInactiveWinsOverRules(t *testing.T) {
	// Even a rule that would allow nothing else matters for inactive slots.
	rules := []SlotDisableRule{
		{TimeSlotId: 3, StartDate: "2024-12-25", Reason: "holiday"},
	}
	status := ResolveSlot(retiredSlot, MustDate(2024, 6, 1), 0, rules)
	if status.Available {
		t.Fatal("inactive slot must be disabled")
	}
	if status.Reason != reasonInactive {
		t.Fatalf("expected inactivity reason got %q", status.Reason)
	}
}

func TestResolveSlotDateRule(t *testing.T) {
	rules := []SlotDisableRule{
		{TimeSlotId: 1, StartDate: "2024-12-24", EndDate: "2024-12-26"},
	}
	date := MustDate(2024, 12, 25)

	// Date-scoped rule hits every city.
	for _, cityId := range []uint{0, 1, 7} {
		status := ResolveSlot(morningSlot, date, cityId, rules)
		if status.Available {
			t.Fatalf("slot should be disabled for city %d", cityId)
		}
		if status.Reason != "Not available on 2024-12-25" {
			t.Fatalf("unexpected reason %q", status.Reason)
		}
	}

	// Outside the range the slot is free again.
	if !ResolveSlot(morningSlot, MustDate(2024, 12, 27), 1, rules).Available {
		t.Fatal("slot should be available after the range")
	}
	// Other slots are untouched.
	if !ResolveSlot(eveningSlot, date, 1, rules).Available {
		t.Fatal("rule must only hit its own slot")
	}
}

func TestResolveSlotCityRule(t *testing.T) {
	rules := []SlotDisableRule{
		{TimeSlotId: 2, CityId: 5, StartDate: "2024-12-31", Reason: "No evening staff"},
	}
	date := MustDate(2024, 12, 31)

	status := ResolveSlot(eveningSlot, date, 5, rules)
	if status.Available {
		t.Fatal("slot should be disabled for the restricted city")
	}
	if status.Reason != "In your city: No evening staff" {
		t.Fatalf("unexpected reason %q", status.Reason)
	}

	// Other cities keep the slot, and so does "no city selected".
	if !ResolveSlot(eveningSlot, date, 6, rules).Available {
		t.Fatal("city rule must not hit other cities")
	}
	if !ResolveSlot(eveningSlot, date, 0, rules).Available {
		t.Fatal("city rule must not apply when no city is selected")
	}
}

func TestResolveSlotPrecedence(t *testing.T) {
	// A global-date rule and a city rule both cover the date; the
	// date-scoped tier wins and only its reason surfaces.
	rules := []SlotDisableRule{
		{TimeSlotId: 1, CityId: 5, StartDate: "2024-12-25", Reason: "city closed"},
		{TimeSlotId: 1, StartDate: "2024-12-25", Reason: "holiday"},
	}
	status := ResolveSlot(morningSlot, MustDate(2024, 12, 25), 5, rules)
	if status.Available {
		t.Fatal("slot should be disabled")
	}
	if status.Reason != "holiday" {
		t.Fatalf("date tier should win, got %q", status.Reason)
	}
}

func TestResolveSlotFirstMatchInOrder(t *testing.T) {
	rules := []SlotDisableRule{
		{TimeSlotId: 1, StartDate: "2024-12-25", Reason: "first"},
		{TimeSlotId: 1, StartDate: "2024-12-25", Reason: "second"},
	}
	status := ResolveSlot(morningSlot, MustDate(2024, 12, 25), 0, rules)
	if status.Reason != "first" {
		t.Fatalf("expected first rule in input order, got %q", status.Reason)
	}
}

func TestResolveSlotsBatch(t *testing.T) {
	slots := []TimeSlot{morningSlot, eveningSlot, retiredSlot}
	rules := []SlotDisableRule{
		{TimeSlotId: 2, CityId: 1, StartDate: "2024-12-25"},
	}
	date := MustDate(2024, 12, 25)

	statuses := ResolveSlots(slots, date, 1, rules)
	if len(statuses) != 3 {
		t.Fatalf("expected one status per slot, got %d", len(statuses))
	}
	if !statuses[0].Available || statuses[1].Available || statuses[2].Available {
		t.Fatalf("unexpected availability pattern: %+v", statuses)
	}

	enabled := AvailableSlots(slots, date, 1, rules)
	if len(enabled) != 1 || enabled[0].Id != morningSlot.Id {
		t.Fatalf("expected only the morning slot enabled, got %+v", enabled)
	}

	if IsSlotAvailable(eveningSlot, date, 1, rules) {
		t.Fatal("single-slot query disagrees with batch result")
	}
	if !IsSlotAvailable(eveningSlot, date, 2, rules) {
		t.Fatal("evening slot should stay available elsewhere")
	}
}
