// Package notifier delivers the practice's patient email. Sending is
// best-effort by contract: callers log failures and never roll back the
// write that triggered the message.
package notifier

import (
	"context"

	"go.uber.org/zap"

	"praxis/internal/domain"
)

type Notifier interface {
	// SendBookingConfirmation mails the patient their request summary with
	// a cancellation link, and a copy to the practice inbox.
	SendBookingConfirmation(ctx context.Context, appt *domain.Appointment) error
	SendCancellationConfirmation(ctx context.Context, appt *domain.Appointment) error
	// SendStatusChange announces a transition to CONFIRMED or CANCELLED.
	SendStatusChange(ctx context.Context, appt *domain.Appointment, status domain.AppointmentStatus) error
	SendContactNotification(ctx context.Context, msg *domain.ContactMessage) error
}

// NoopNotifier stands in when SMTP is not configured. Every send is
// swallowed with a log line.
type NoopNotifier struct {
	logger *zap.Logger
}

func NewNoopNotifier(logger *zap.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

func (n *NoopNotifier) SendBookingConfirmation(_ context.Context, appt *domain.Appointment) error {
	n.logger.Info("email disabled, skipping booking confirmation", zap.String("appointment_id", appt.ID))
	return nil
}

func (n *NoopNotifier) SendCancellationConfirmation(_ context.Context, appt *domain.Appointment) error {
	n.logger.Info("email disabled, skipping cancellation confirmation", zap.String("appointment_id", appt.ID))
	return nil
}

func (n *NoopNotifier) SendStatusChange(_ context.Context, appt *domain.Appointment, status domain.AppointmentStatus) error {
	n.logger.Info("email disabled, skipping status change mail",
		zap.String("appointment_id", appt.ID),
		zap.String("status", string(status)))
	return nil
}

func (n *NoopNotifier) SendContactNotification(_ context.Context, _ *domain.ContactMessage) error {
	n.logger.Info("email disabled, skipping contact notification")
	return nil
}
