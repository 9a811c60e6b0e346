// Package i18n is a small catalog of user-facing messages in the two site
// languages. It only covers strings the API returns to patients; admin
// endpoints answer in German, matching the back office.
package i18n

import "praxis/internal/domain"

type key string

const (
	KeyInvalidDate      key = "booking.invalid_date"
	KeyUnknownSlot      key = "booking.unknown_slot"
	KeySlotTooSoon      key = "booking.slot_too_soon"
	KeySlotTaken        key = "booking.slot_taken"
	KeySlotBlocked      key = "booking.slot_blocked"
	KeyAlreadyCancelled key = "booking.already_cancelled"
	KeyNotFound         key = "common.not_found"
	KeyBadRequest       key = "common.bad_request"
	KeyInternal         key = "common.internal"
)

var messages = map[key]map[domain.Language]string{
	KeyInvalidDate: {
		domain.LanguageGerman:  "Dieses Datum kann nicht gebucht werden",
		domain.LanguageEnglish: "This date cannot be booked",
	},
	KeyUnknownSlot: {
		domain.LanguageGerman:  "Ungültiger Zeitslot",
		domain.LanguageEnglish: "Invalid time slot",
	},
	KeySlotTooSoon: {
		domain.LanguageGerman:  "Termine müssen mindestens 2 Stunden im Voraus gebucht werden",
		domain.LanguageEnglish: "Appointments must be booked at least 2 hours in advance",
	},
	KeySlotTaken: {
		domain.LanguageGerman:  "Dieser Zeitslot ist bereits belegt",
		domain.LanguageEnglish: "This time slot is already booked",
	},
	KeySlotBlocked: {
		domain.LanguageGerman:  "Dieser Zeitslot ist nicht verfügbar",
		domain.LanguageEnglish: "This time slot is not available",
	},
	KeyAlreadyCancelled: {
		domain.LanguageGerman:  "Dieser Termin wurde bereits storniert",
		domain.LanguageEnglish: "This appointment has already been cancelled",
	},
	KeyNotFound: {
		domain.LanguageGerman:  "Nicht gefunden",
		domain.LanguageEnglish: "Not found",
	},
	KeyBadRequest: {
		domain.LanguageGerman:  "Ungültige Anfrage",
		domain.LanguageEnglish: "Invalid request",
	},
	KeyInternal: {
		domain.LanguageGerman:  "Interner Fehler, bitte versuchen Sie es später erneut",
		domain.LanguageEnglish: "Internal error, please try again later",
	},
}

// Msg returns the message for k in lang, falling back to German for unknown
// languages (the site's primary locale).
func Msg(lang domain.Language, k key) string {
	byLang, ok := messages[k]
	if !ok {
		return string(k)
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang[domain.LanguageGerman]
}
