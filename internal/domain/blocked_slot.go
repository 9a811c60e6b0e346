package domain

import (
	"time"
)

// BlockedSlot is practice-initiated unavailability: either one slot of a day
// or the whole day. TimeSlot is nil exactly when AllDay is set.
type BlockedSlot struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	AllDay    bool      `json:"all_day"`
	TimeSlot  *string   `json:"time_slot,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBlockedSlotDTO struct {
	Date     string  `json:"date" binding:"required"`
	AllDay   bool    `json:"all_day"`
	TimeSlot *string `json:"time_slot,omitempty"`
	Reason   *string `json:"reason,omitempty"`
}
