package notifier

import (
	"fmt"
	"time"

	"praxis/internal/domain"
)

type mailTexts struct {
	SubjectRequest      string
	SubjectConfirmed    string
	SubjectCancelled    string
	Greeting            string
	RequestReceived     string
	Confirmed           string
	Cancelled           string
	CancelledByPractice string
	Date                string
	Time                string
	Address             string
	CancelText          string
	CancelLink          string
	Regards             string
	Team                string
}

var mailTextsDe = mailTexts{
	SubjectRequest:      "Terminanfrage erhalten - Praxis Amara",
	SubjectConfirmed:    "Termin bestätigt - Praxis Amara",
	SubjectCancelled:    "Termin storniert - Praxis Amara",
	Greeting:            "Sehr geehrte/r",
	RequestReceived:     "Ihre Terminanfrage ist bei uns eingegangen. Wir werden sie zeitnah bestätigen.",
	Confirmed:           "Wir freuen uns, Ihnen mitteilen zu können, dass Ihr Termin bestätigt wurde.",
	Cancelled:           "Ihr Termin wurde erfolgreich storniert.",
	CancelledByPractice: "Leider müssen wir Ihnen mitteilen, dass Ihr Termin storniert wurde. Bitte kontaktieren Sie uns, um einen neuen Termin zu vereinbaren.",
	Date:                "Datum",
	Time:                "Uhrzeit",
	Address:             "Adresse",
	CancelText:          "Falls Sie den Termin absagen möchten, klicken Sie bitte auf folgenden Link:",
	CancelLink:          "Termin stornieren",
	Regards:             "Mit freundlichen Grüßen",
	Team:                "Ihr Praxis Amara Team",
}

var mailTextsEn = mailTexts{
	SubjectRequest:      "Appointment Request Received - Praxis Amara",
	SubjectConfirmed:    "Appointment Confirmed - Praxis Amara",
	SubjectCancelled:    "Appointment Cancelled - Praxis Amara",
	Greeting:            "Dear",
	RequestReceived:     "Your appointment request has been received. We will confirm it shortly.",
	Confirmed:           "We are pleased to inform you that your appointment has been confirmed.",
	Cancelled:           "Your appointment has been successfully cancelled.",
	CancelledByPractice: "Unfortunately, we must inform you that your appointment has been cancelled. Please contact us to schedule a new appointment.",
	Date:                "Date",
	Time:                "Time",
	Address:             "Address",
	CancelText:          "If you need to cancel your appointment, please click the following link:",
	CancelLink:          "Cancel Appointment",
	Regards:             "Best regards",
	Team:                "Your Praxis Amara Team",
}

func textsFor(lang domain.Language) mailTexts {
	if lang == domain.LanguageEnglish {
		return mailTextsEn
	}
	return mailTextsDe
}

var germanWeekdays = [...]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}

var germanMonths = [...]string{"", "Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember"}

// formatDate renders a long-form date in the patient's language, e.g.
// "Montag, 8. September 2025" or "Monday, September 8, 2025".
func formatDate(date time.Time, lang domain.Language) string {
	if lang == domain.LanguageEnglish {
		return date.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("%s, %d. %s %d",
		germanWeekdays[date.Weekday()],
		date.Day(),
		germanMonths[date.Month()],
		date.Year(),
	)
}
