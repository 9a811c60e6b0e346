package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"praxis/internal/domain"
	"praxis/internal/notifier"
	"praxis/internal/repository"
	"praxis/internal/schedule"
	"praxis/pkg/auth"
	"praxis/pkg/validator"
)

const cancelTokenLength = 32

type AppointmentServiceImpl struct {
	repo        repository.AppointmentRepository
	blockedRepo repository.BlockedSlotRepository
	notifier    notifier.Notifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	blockedRepo repository.BlockedSlotRepository,
	notif notifier.Notifier,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:        repo,
		blockedRepo: blockedRepo,
		notifier:    notif,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return nil, domain.ErrInvalidBookingDate
	}

	now := s.now()
	if !schedule.IsValidBookingDate(date, now) {
		return nil, domain.ErrInvalidBookingDate
	}
	if !schedule.IsKnownSlot(date, dto.TimeSlot) {
		return nil, domain.ErrUnknownSlot
	}
	if schedule.IsSlotTooSoon(date, dto.TimeSlot, now) {
		return nil, domain.ErrSlotTooSoon
	}

	token, err := auth.GenerateRandomToken(cancelTokenLength)
	if err != nil {
		s.logger.Error("failed to generate cancel token", zap.Error(err))
		return nil, fmt.Errorf("generating cancel token: %w", err)
	}

	lang := dto.Language
	if lang == "" {
		lang = domain.LanguageGerman
	}

	appt := domain.Appointment{
		Date:         schedule.StartOfDay(date),
		TimeSlot:     dto.TimeSlot,
		PatientName:  validator.SanitizeString(dto.Name),
		PatientEmail: validator.SanitizeString(dto.Email),
		PatientPhone: validator.FormatPhone(dto.Phone),
		Reason:       dto.Reason,
		Status:       domain.AppointmentStatusPending,
		CancelToken:  token,
		Language:     lang,
	}

	id, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}
	appt.ID = id

	if err := s.notifier.SendBookingConfirmation(ctx, &appt); err != nil {
		s.logger.Warn("booking confirmation mail failed",
			zap.String("appointmentID", id), zap.Error(err))
	}

	s.logger.Info("appointment booked",
		zap.String("appointmentID", id),
		zap.String("date", dto.Date),
		zap.String("slot", dto.TimeSlot))

	return &appt, nil
}

// AdminCreate skips the booking-window and lead-time rules so the back
// office can record phone bookings for any open day, past days included.
// The slot label must still exist for the weekday and the conflict guard
// still applies.
func (s *AppointmentServiceImpl) AdminCreate(ctx context.Context, dto domain.AdminCreateAppointmentDTO) (*domain.Appointment, error) {
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return nil, domain.ErrInvalidBookingDate
	}
	if len(schedule.SlotsForWeekday(date.Weekday())) == 0 {
		return nil, domain.ErrInvalidBookingDate
	}
	if !schedule.IsKnownSlot(date, dto.TimeSlot) {
		return nil, domain.ErrUnknownSlot
	}

	token, err := auth.GenerateRandomToken(cancelTokenLength)
	if err != nil {
		s.logger.Error("failed to generate cancel token", zap.Error(err))
		return nil, fmt.Errorf("generating cancel token: %w", err)
	}

	status := dto.Status
	if status == "" {
		status = domain.AppointmentStatusConfirmed
	}

	appt := domain.Appointment{
		Date:         schedule.StartOfDay(date),
		TimeSlot:     dto.TimeSlot,
		PatientName:  validator.SanitizeString(dto.Name),
		PatientEmail: validator.SanitizeString(dto.Email),
		PatientPhone: validator.FormatPhone(dto.Phone),
		Reason:       dto.Reason,
		Status:       status,
		CancelToken:  token,
		Language:     domain.LanguageGerman,
	}

	id, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}
	appt.ID = id

	if appt.PatientEmail != "" && status == domain.AppointmentStatusConfirmed {
		if err := s.notifier.SendStatusChange(ctx, &appt, status); err != nil {
			s.logger.Warn("confirmation mail failed",
				zap.String("appointmentID", id), zap.Error(err))
		}
	}

	return &appt, nil
}

// ResolveDay partitions one day's slots into booked and available. Blocked
// periods count as booked from the patient's point of view; a whole-day
// block expands to every slot of the weekday.
func (s *AppointmentServiceImpl) ResolveDay(ctx context.Context, date time.Time) (*domain.DayAvailability, error) {
	day := schedule.StartOfDay(date)
	allSlots := schedule.SlotsForWeekday(day.Weekday())

	taken := make(map[string]bool)

	booked, err := s.repo.BookedSlots(ctx, day)
	if err != nil {
		s.logger.Error("failed to load booked slots", zap.Time("date", day), zap.Error(err))
		return nil, fmt.Errorf("loading booked slots: %w", err)
	}
	for _, slot := range booked {
		taken[slot] = true
	}

	blocks, err := s.blockedRepo.List(ctx, &day)
	if err != nil {
		s.logger.Error("failed to load blocked slots", zap.Time("date", day), zap.Error(err))
		return nil, fmt.Errorf("loading blocked slots: %w", err)
	}
	for _, block := range blocks {
		if block.AllDay {
			for _, slot := range allSlots {
				taken[slot] = true
			}
		} else if block.TimeSlot != nil {
			taken[*block.TimeSlot] = true
		}
	}

	availability := domain.DayAvailability{
		Date:           day.Format("2006-01-02"),
		AllSlots:       allSlots,
		BookedSlots:    make([]string, 0, len(taken)),
		AvailableSlots: make([]string, 0, len(allSlots)),
	}
	for _, slot := range allSlots {
		if taken[slot] {
			availability.BookedSlots = append(availability.BookedSlots, slot)
		} else {
			availability.AvailableSlots = append(availability.AvailableSlots, slot)
		}
	}

	return &availability, nil
}

func (s *AppointmentServiceImpl) CancelByToken(ctx context.Context, token string) (*domain.Appointment, error) {
	appt, err := s.repo.GetByCancelToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if appt.Status == domain.AppointmentStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, appt.ID, domain.AppointmentStatusCancelled); err != nil {
		s.logger.Error("failed to cancel appointment", zap.String("appointmentID", appt.ID), zap.Error(err))
		return nil, fmt.Errorf("cancelling appointment: %w", err)
	}
	appt.Status = domain.AppointmentStatusCancelled

	if err := s.notifier.SendCancellationConfirmation(ctx, appt); err != nil {
		s.logger.Warn("cancellation mail failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	s.logger.Info("appointment cancelled",
		zap.String("appointmentID", appt.ID),
		zap.String("slot", appt.TimeSlot))

	return appt, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == status {
		return appt, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update appointment status",
			zap.String("appointmentID", id), zap.Error(err))
		return nil, fmt.Errorf("updating appointment status: %w", err)
	}
	appt.Status = status

	if appt.PatientEmail != "" {
		if err := s.notifier.SendStatusChange(ctx, appt, status); err != nil {
			s.logger.Warn("status change mail failed",
				zap.String("appointmentID", id), zap.Error(err))
		}
	}

	return appt, nil
}

func (s *AppointmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list appointments", zap.Error(err))
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appointments, nil
}

func (s *AppointmentServiceImpl) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.Stats(ctx, s.now())
}
