package domain

import "errors"

// Sentinel errors crossing the service boundary. Handlers translate them to
// HTTP statuses and localized messages; everything else surfaces as a
// generic internal error.
var (
	ErrInvalidBookingDate = errors.New("date is not bookable")
	ErrUnknownSlot        = errors.New("no such slot on that weekday")
	ErrSlotTooSoon        = errors.New("slot starts too soon")
	ErrSlotTaken          = errors.New("slot already booked")
	ErrSlotBlocked        = errors.New("slot not available")
	ErrAlreadyBlocked     = errors.New("period already blocked")
	ErrAlreadyCancelled   = errors.New("appointment already cancelled")
	ErrNotFound           = errors.New("not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
