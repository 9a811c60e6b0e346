package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotsForWeekday returns the ordered list of bookable slot labels for the
// given weekday. Morning slots skip the walk-in window; a slot is emitted
// only if it fits fully before the window's closing time. Days without
// opening hours yield an empty list.
func SlotsForWeekday(day time.Weekday) []string {
	hours, ok := OpeningHours[day]
	if !ok {
		return []string{}
	}

	walkInStart := toMinutes(WalkInWindow.Start)
	walkInEnd := toMinutes(WalkInWindow.End)
	step := int(SlotDuration.Minutes())

	slots := []string{}

	if hours.Morning != nil {
		end := toMinutes(hours.Morning.End)
		for cur := toMinutes(hours.Morning.Start); cur+step <= end; cur += step {
			if cur < walkInStart || cur >= walkInEnd {
				slots = append(slots, toLabel(cur))
			}
		}
	}

	if hours.Afternoon != nil {
		end := toMinutes(hours.Afternoon.End)
		for cur := toMinutes(hours.Afternoon.Start); cur+step <= end; cur += step {
			slots = append(slots, toLabel(cur))
		}
	}

	return slots
}

// IsKnownSlot reports whether label is a slot the generator would emit for
// the weekday of date.
func IsKnownSlot(date time.Time, label string) bool {
	for _, slot := range SlotsForWeekday(date.Weekday()) {
		if slot == label {
			return true
		}
	}
	return false
}

// ParseSlot splits an "HH:MM" label into its hour and minute components.
func ParseSlot(label string) (hour, minute int, err error) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid slot label %q", label)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid slot label %q", label)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid slot label %q", label)
	}
	return hour, minute, nil
}

func toMinutes(label string) int {
	h, m, err := ParseSlot(label)
	if err != nil {
		// Labels in the static tables are spelled by hand; a bad one is a
		// programming error, not an input error.
		panic(err)
	}
	return h*60 + m
}

func toLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
