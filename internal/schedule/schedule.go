// Package schedule holds the practice's static weekly opening hours and the
// slot math derived from them. Everything here is pure computation; live
// bookings and blocked periods are handled one level up in the services.
package schedule

import "time"

// TimeWindow is a half-open [Start, End) interval of practice-local wall
// clock time, both bounds formatted as zero-padded "HH:MM".
type TimeWindow struct {
	Start string
	End   string
}

// DayHours describes the bookable windows of a single weekday. A nil
// Afternoon means the practice closes after the morning window.
type DayHours struct {
	Morning   *TimeWindow
	Afternoon *TimeWindow
}

const (
	// SlotDuration is the grid granularity for all days.
	SlotDuration = 30 * time.Minute

	// MaxBookingDays is how far into the future patients may book.
	MaxBookingDays = 60

	// MinBookingLead is the minimum interval between "now" and a bookable
	// slot's start.
	MinBookingLead = 2 * time.Hour
)

// WalkInWindow is the daily interval reserved for walk-in consultations.
// No slots are generated inside it, regardless of weekday.
var WalkInWindow = TimeWindow{Start: "12:00", End: "13:00"}

// OpeningHours maps weekdays to their bookable windows. Saturday and Sunday
// have no entry. This table changes at deployment time only, never at runtime.
var OpeningHours = map[time.Weekday]DayHours{
	time.Monday: {
		Morning:   &TimeWindow{Start: "08:00", End: "13:00"},
		Afternoon: &TimeWindow{Start: "15:00", End: "17:30"},
	},
	time.Tuesday: {
		Morning:   &TimeWindow{Start: "08:00", End: "13:00"},
		Afternoon: &TimeWindow{Start: "15:00", End: "17:30"},
	},
	time.Wednesday: {
		Morning: &TimeWindow{Start: "08:00", End: "13:00"},
	},
	time.Thursday: {
		Morning: &TimeWindow{Start: "08:00", End: "13:00"},
	},
	time.Friday: {
		Morning: &TimeWindow{Start: "08:00", End: "13:00"},
	},
}
