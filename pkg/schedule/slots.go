package schedule

import "fmt"

// SlotStatus is the availability verdict for one time slot on one date.
// Reason is empty when the slot is available.
type SlotStatus struct {
	Slot      TimeSlot `json:"slot"`
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
}

const reasonInactive = "Time slot is not active"

func dateRuleReason(rule SlotDisableRule, date Date) string {
	if rule.Reason != "" {
		return rule.Reason
	}
	return fmt.Sprintf("Not available on %s", date.ISO())
}

func cityRuleReason(rule SlotDisableRule, date Date) string {
	if rule.Reason != "" {
		return fmt.Sprintf("In your city: %s", rule.Reason)
	}
	return fmt.Sprintf("Not available in your city on %s", date.ISO())
}

// ruleCovers reports whether the rule's inclusive date range contains the
// target date. Rules with a malformed start date never match.
func ruleCovers(rule SlotDisableRule, date Date) bool {
	start, err := ParseDate(rule.StartDate)
	if err != nil {
		return false
	}
	end := start
	if rule.EndDate != "" {
		if e, err := ParseDate(rule.EndDate); err == nil {
			end = e
		}
	}
	return !date.Before(start) && !date.After(end)
}

// ResolveSlot evaluates one slot for a delivery date and city against the
// disable rules. Three ordered checks, first match wins:
//
//  1. an inactive slot is disabled everywhere, ignoring date and city
//  2. a rule without a city restriction disables the slot for all cities
//     on the covered dates
//  3. a city-restricted rule disables only that city, and is consulted
//     only when a city is selected (cityId != 0)
//
// Within a tier the first matching rule in input order supplies the
// reason; later rules are not accumulated. If nothing matches the slot is
// available with an empty reason.
func ResolveSlot(slot TimeSlot, date Date, cityId uint, rules []SlotDisableRule) SlotStatus {
	if !slot.Active {
		return SlotStatus{Slot: slot, Available: false, Reason: reasonInactive}
	}
	for _, rule := range rules {
		if rule.TimeSlotId != slot.Id || rule.CityId != 0 {
			continue
		}
		if ruleCovers(rule, date) {
			return SlotStatus{Slot: slot, Available: false, Reason: dateRuleReason(rule, date)}
		}
	}
	if cityId != 0 {
		for _, rule := range rules {
			if rule.TimeSlotId != slot.Id || rule.CityId != cityId {
				continue
			}
			if ruleCovers(rule, date) {
				return SlotStatus{Slot: slot, Available: false, Reason: cityRuleReason(rule, date)}
			}
		}
	}
	return SlotStatus{Slot: slot, Available: true}
}

// ResolveSlots evaluates every slot against one (date, city) pair,
// returning one status per slot in input order.
func ResolveSlots(slots []TimeSlot, date Date, cityId uint, rules []SlotDisableRule) []SlotStatus {
	statuses := make([]SlotStatus, len(slots))
	for i, slot := range slots {
		statuses[i] = ResolveSlot(slot, date, cityId, rules)
	}
	return statuses
}

// AvailableSlots returns only the slots that ResolveSlots leaves enabled,
// in input order.
func AvailableSlots(slots []TimeSlot, date Date, cityId uint, rules []SlotDisableRule) []TimeSlot {
	enabled := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if ResolveSlot(slot, date, cityId, rules).Available {
			enabled = append(enabled, slot)
		}
	}
	return enabled
}

// IsSlotAvailable answers the single-slot question directly.
func IsSlotAvailable(slot TimeSlot, date Date, cityId uint, rules []SlotDisableRule) bool {
	return ResolveSlot(slot, date, cityId, rules).Available
}
