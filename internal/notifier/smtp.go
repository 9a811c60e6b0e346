package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"praxis/config"
	"praxis/internal/domain"
)

type SMTPNotifier struct {
	dialer   *gomail.Dialer
	cfg      config.SMTPConfig
	practice config.PracticeConfig
	baseURL  string
	logger   *zap.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, practice config.PracticeConfig, baseURL string, logger *zap.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:      cfg,
		practice: practice,
		baseURL:  baseURL,
		logger:   logger,
	}
}

func (n *SMTPNotifier) SendBookingConfirmation(ctx context.Context, appt *domain.Appointment) error {
	t := textsFor(appt.Language)

	body, err := renderAppointmentMail(appointmentMailData{
		Texts:       t,
		PatientName: appt.PatientName,
		Date:        formatDate(appt.Date, appt.Language),
		TimeSlot:    appt.TimeSlot,
		Practice:    n.practice,
		Intro:       t.RequestReceived,
		CancelURL:   fmt.Sprintf("%s/%s/termin/stornieren?token=%s", n.baseURL, appt.Language, appt.CancelToken),
	})
	if err != nil {
		return err
	}

	if err := n.send(ctx, appt.PatientEmail, t.SubjectRequest, body); err != nil {
		return err
	}

	// Copy to the practice inbox so the team sees new requests without
	// opening the dashboard.
	adminBody := fmt.Sprintf(
		"<h2>Neue Terminanfrage</h2><p><strong>Patient:</strong> %s</p><p><strong>Telefon:</strong> %s</p><p><strong>E-Mail:</strong> %s</p><p><strong>Datum:</strong> %s</p><p><strong>Uhrzeit:</strong> %s&nbsp;Uhr</p>",
		template.HTMLEscapeString(appt.PatientName),
		template.HTMLEscapeString(appt.PatientPhone),
		template.HTMLEscapeString(appt.PatientEmail),
		formatDate(appt.Date, domain.LanguageGerman),
		appt.TimeSlot,
	)
	subject := fmt.Sprintf("Neuer Termin: %s - %s %s", appt.PatientName, formatDate(appt.Date, domain.LanguageGerman), appt.TimeSlot)
	return n.send(ctx, n.cfg.AdminEmail, subject, adminBody)
}

func (n *SMTPNotifier) SendCancellationConfirmation(ctx context.Context, appt *domain.Appointment) error {
	t := textsFor(appt.Language)

	body, err := renderAppointmentMail(appointmentMailData{
		Texts:       t,
		PatientName: appt.PatientName,
		Date:        formatDate(appt.Date, appt.Language),
		TimeSlot:    appt.TimeSlot,
		Practice:    n.practice,
		Intro:       t.Cancelled,
	})
	if err != nil {
		return err
	}

	return n.send(ctx, appt.PatientEmail, t.SubjectCancelled, body)
}

func (n *SMTPNotifier) SendStatusChange(ctx context.Context, appt *domain.Appointment, status domain.AppointmentStatus) error {
	t := textsFor(appt.Language)

	var intro, subject string
	switch status {
	case domain.AppointmentStatusConfirmed:
		intro, subject = t.Confirmed, t.SubjectConfirmed
	case domain.AppointmentStatusCancelled:
		intro, subject = t.CancelledByPractice, t.SubjectCancelled
	default:
		// Other transitions are internal bookkeeping.
		return nil
	}

	body, err := renderAppointmentMail(appointmentMailData{
		Texts:       t,
		PatientName: appt.PatientName,
		Date:        formatDate(appt.Date, appt.Language),
		TimeSlot:    appt.TimeSlot,
		Practice:    n.practice,
		Intro:       intro,
	})
	if err != nil {
		return err
	}

	return n.send(ctx, appt.PatientEmail, subject, body)
}

func (n *SMTPNotifier) SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error {
	phone := ""
	if msg.Phone != nil {
		phone = *msg.Phone
	}
	body := fmt.Sprintf(
		"<h2>Neue Kontaktanfrage</h2><p><strong>Name:</strong> %s</p><p><strong>E-Mail:</strong> %s</p><p><strong>Telefon:</strong> %s</p><p>%s</p>",
		template.HTMLEscapeString(msg.Name),
		template.HTMLEscapeString(msg.Email),
		template.HTMLEscapeString(phone),
		template.HTMLEscapeString(msg.Message),
	)

	return n.send(ctx, n.cfg.AdminEmail, "Neue Kontaktanfrage über die Website", body)
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.From, n.practice.DisplayName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}

type appointmentMailData struct {
	Texts       mailTexts
	PatientName string
	Date        string
	TimeSlot    string
	Practice    config.PracticeConfig
	Intro       string
	CancelURL   string
}

var appointmentMailTmpl = template.Must(template.New("appointment").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: 'Segoe UI', sans-serif; color: #1E3A5F;">
  <div style="max-width: 600px; margin: 0 auto;">
    <div style="background-color: #1E3A5F; color: white; padding: 24px; text-align: center;">
      <h1 style="margin: 0; font-size: 24px; font-weight: 400;">{{.Practice.DisplayName}}</h1>
    </div>
    <div style="padding: 24px;">
      <p>{{.Texts.Greeting}} {{.PatientName}},</p>
      <p>{{.Intro}}</p>
      <div style="background-color: #EFF6FF; border-left: 4px solid #3B82F6; padding: 16px; margin: 16px 0;">
        <p><strong>{{.Texts.Date}}:</strong> {{.Date}}</p>
        <p><strong>{{.Texts.Time}}:</strong> {{.TimeSlot}}</p>
        <p><strong>{{.Texts.Address}}:</strong> {{.Practice.Address}}</p>
      </div>
      {{if .CancelURL}}
      <div style="background-color: #fff8e1; border: 1px solid #ffcc02; padding: 12px; margin: 16px 0;">
        <p style="margin: 0 0 8px 0;">{{.Texts.CancelText}}</p>
        <a href="{{.CancelURL}}" style="color: #d32f2f;">{{.Texts.CancelLink}}</a>
      </div>
      {{end}}
      <p>{{.Texts.Regards}},<br><strong>{{.Texts.Team}}</strong></p>
    </div>
    <div style="background-color: #f5f5f5; padding: 16px; text-align: center; font-size: 13px; color: #666;">
      <p>{{.Practice.DisplayName}} | {{.Practice.Address}}<br>Tel: {{.Practice.Phone}} | E-Mail: {{.Practice.Email}}</p>
    </div>
  </div>
</body>
</html>`))

func renderAppointmentMail(data appointmentMailData) (string, error) {
	var buf bytes.Buffer
	if err := appointmentMailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering mail template: %w", err)
	}
	return buf.String(), nil
}
