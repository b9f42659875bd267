package schedule

// DateBlocklist is a set of canonical YYYY-MM-DD strings that are not
// selectable as delivery dates.
type DateBlocklist map[string]struct{}

// BlocklistFromDates builds a blocklist from already-known disabled date
// strings. Each entry is normalized first; malformed entries are silently
// dropped.
func BlocklistFromDates(dates []string) DateBlocklist {
	blocked := make(DateBlocklist, len(dates))
	for _, raw := range dates {
		iso, err := NormalizeDate(raw)
		if err != nil {
			continue
		}
		blocked[iso] = struct{}{}
	}
	return blocked
}

// BlocklistFromRules expands date disable rules into a point-wise
// blocklist for one city. A rule applies when it has no city restriction
// or its city matches cityId. Ranges are inclusive both ends; a rule
// without an end date blocks only its start date. Rules with a malformed
// start date are skipped.
func BlocklistFromRules(rules []DateDisableRule, cityId uint) DateBlocklist {
	blocked := make(DateBlocklist)
	for _, rule := range rules {
		if rule.CityId != 0 && rule.CityId != cityId {
			continue
		}
		start, err := ParseDate(rule.StartDate)
		if err != nil {
			continue
		}
		end := start
		if rule.EndDate != "" {
			if e, err := ParseDate(rule.EndDate); err == nil {
				end = e
			}
		}
		for day := start; !day.After(end); day = day.AddDays(1) {
			blocked[day.ISO()] = struct{}{}
		}
	}
	return blocked
}

// Contains reports whether the given date is blocked.
func (b DateBlocklist) Contains(d Date) bool {
	_, found := b[d.ISO()]
	return found
}

// AvailableDates walks exactly window consecutive days starting at start
// (inclusive) and returns the canonical form of every day not present in
// the blocklist, in chronological order. A window of zero or less yields
// an empty result.
func AvailableDates(start Date, window int, blocked DateBlocklist) []string {
	if window <= 0 {
		return []string{}
	}
	dates := make([]string, 0, window)
	for i := 0; i < window; i++ {
		day := start.AddDays(i)
		if blocked.Contains(day) {
			continue
		}
		dates = append(dates, day.ISO())
	}
	return dates
}
