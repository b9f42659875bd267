package schedule

import "time"

// DefaultCutoffTime is used for cities without a configured cutoff:
// same-day dispatch is possible until end of day.
const DefaultCutoffTime = "23:59"

// EffectiveCutoff returns the city's configured cutoff time string, or
// DefaultCutoffTime when none is set.
func EffectiveCutoff(city DeliveryCity) string {
	if city.CutoffTime == "" {
		return DefaultCutoffTime
	}
	return city.CutoffTime
}

// BeforeCutoff reports whether now's wall clock is strictly before the
// given "HH:mm" cutoff. A cutoff string that fails to parse counts as
// already passed (returns false): the engine never over-promises same-day
// delivery on bad configuration.
func BeforeCutoff(cutoff string, now time.Time) bool {
	ct, err := ParseClock(cutoff)
	if err != nil {
		return false
	}
	return ClockFromTime(now).Before(ct)
}

// SameDayAvailable reports whether an order placed at now can still be
// dispatched the same day for the given city.
func SameDayAvailable(city DeliveryCity, now time.Time) bool {
	return BeforeCutoff(EffectiveCutoff(city), now)
}

// MinimumDeliveryDate combines the cart delay with the city cutoff to
// produce the earliest legal delivery date. Missing the cutoff costs
// exactly one extra day, added on top of the tag-driven delay.
func MinimumDeliveryDate(city DeliveryCity, now time.Time, cartDelay int) Date {
	offset := cartDelay
	if !SameDayAvailable(city, now) {
		offset++
	}
	return DateFromTime(now).AddDays(offset)
}

// TimeUntilCutoff returns the remaining hours and minutes until the
// city's cutoff, for countdown display. ok is false once the cutoff has
// passed (or cannot be parsed); the result must not be used for gating.
func TimeUntilCutoff(city DeliveryCity, now time.Time) (ClockTime, bool) {
	ct, err := ParseClock(EffectiveCutoff(city))
	if err != nil {
		return ClockTime{}, false
	}
	current := ClockFromTime(now)
	if !current.Before(ct) {
		return ClockTime{}, false
	}
	remaining := ct.MinutesSinceMidnight() - current.MinutesSinceMidnight()
	return ClockTime{Hour: remaining / 60, Minute: remaining % 60}, true
}
