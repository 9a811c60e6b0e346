package schedule

import "time"

// StartOfDay truncates t to midnight in its own location. All date
// comparisons in the booking rules work on day-truncated values.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsValidBookingDate reports whether date may be booked by a patient as of
// now. Weekends and days without opening hours are rejected, as is anything
// outside the window (today, MaxBookingDays]. Same-day booking is forbidden
// regardless of remaining lead time; the separate lead-time rule in
// IsSlotTooSoon is evaluated on top of this one.
func IsValidBookingDate(date, now time.Time) bool {
	day := date.Weekday()
	if day == time.Saturday || day == time.Sunday {
		return false
	}

	today := StartOfDay(now)
	target := StartOfDay(date)
	if !target.After(today) {
		return false
	}
	if target.After(today.AddDate(0, 0, MaxBookingDays)) {
		return false
	}

	_, ok := OpeningHours[day]
	return ok
}

// IsSlotTooSoon reports whether the slot's start on date falls before
// now + MinBookingLead. The slot label is composed with the day-truncated
// date; callers must have verified the label beforehand.
func IsSlotTooSoon(date time.Time, label string, now time.Time) bool {
	hour, minute, err := ParseSlot(label)
	if err != nil {
		return true
	}

	day := StartOfDay(date)
	slotStart := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())

	return slotStart.Before(now.Add(MinBookingLead))
}
