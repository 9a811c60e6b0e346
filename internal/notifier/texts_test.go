package notifier

import (
	"strings"
	"testing"
	"time"

	"praxis/internal/domain"
)

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // a Monday

	if got := formatDate(date, domain.LanguageGerman); got != "Montag, 3. März 2025" {
		t.Errorf("German date = %q", got)
	}
	if got := formatDate(date, domain.LanguageEnglish); got != "Monday, March 3, 2025" {
		t.Errorf("English date = %q", got)
	}
	// Unknown languages fall back to German.
	if got := formatDate(date, domain.Language("fr")); !strings.HasPrefix(got, "Montag") {
		t.Errorf("fallback date = %q", got)
	}
}

func TestRenderAppointmentMail(t *testing.T) {
	data := appointmentMailData{
		Texts:       textsFor(domain.LanguageGerman),
		PatientName: "Erika Mustermann",
		Date:        "Montag, 3. März 2025",
		TimeSlot:    "09:30",
		Intro:       mailTextsDe.RequestReceived,
		CancelURL:   "https://example.org/de/termin/stornieren?token=abc",
	}
	data.Practice.DisplayName = "Praxis Amara"
	data.Practice.Address = "Eidelstedter Platz 6a, 22523 Hamburg"

	body, err := renderAppointmentMail(data)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Erika Mustermann", "09:30", "stornieren?token=abc", "Praxis Amara"} {
		if !strings.Contains(body, want) {
			t.Errorf("mail body missing %q", want)
		}
	}
}

func TestRenderAppointmentMail_NoCancelSection(t *testing.T) {
	data := appointmentMailData{
		Texts:       textsFor(domain.LanguageEnglish),
		PatientName: "John Doe",
		Date:        "Monday, March 3, 2025",
		TimeSlot:    "09:30",
		Intro:       mailTextsEn.Confirmed,
	}

	body, err := renderAppointmentMail(data)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(body, mailTextsEn.CancelLink) {
		t.Error("status mails must not contain a cancel link")
	}
}
