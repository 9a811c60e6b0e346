package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"praxis/internal/domain"
)

// Wednesday morning; the practice is open Wed 08:00-13:00.
var testNow = time.Date(2025, 9, 3, 10, 0, 0, 0, time.UTC)

func newTestAppointmentService() (*AppointmentServiceImpl, *fakeAppointmentRepo, *fakeNotifier) {
	blocked := &fakeBlockedSlotRepo{}
	repo := &fakeAppointmentRepo{blocked: blocked}
	notif := &fakeNotifier{}
	svc := NewAppointmentService(repo, blocked, notif, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc, repo, notif
}

func validBooking() domain.CreateAppointmentDTO {
	return domain.CreateAppointmentDTO{
		Date:     "2025-09-05", // Friday
		TimeSlot: "08:00",
		Name:     "Erika Mustermann",
		Email:    "erika@example.org",
		Phone:    "040 1234567",
		Language: domain.LanguageGerman,
	}
}

func TestCreate_BooksPendingAppointment(t *testing.T) {
	svc, repo, notif := newTestAppointmentService()

	appt, err := svc.Create(context.Background(), validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if appt.Status != domain.AppointmentStatusPending {
		t.Errorf("status = %s, want PENDING", appt.Status)
	}
	if appt.CancelToken == "" {
		t.Error("cancel token not set")
	}
	if appt.PatientPhone != "+49401234567" {
		t.Errorf("phone = %q, want normalized +49 form", appt.PatientPhone)
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("stored %d appointments, want 1", len(repo.appointments))
	}
	if len(notif.bookings) != 1 {
		t.Errorf("booking confirmation sent %d times, want 1", len(notif.bookings))
	}
}

func TestCreate_MailFailureDoesNotFailBooking(t *testing.T) {
	svc, repo, notif := newTestAppointmentService()
	notif.fail = true

	if _, err := svc.Create(context.Background(), validBooking()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(repo.appointments) != 1 {
		t.Error("appointment not persisted despite mail failure")
	}
}

func TestCreate_RejectsInvalidDates(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	tests := []struct {
		name string
		date string
	}{
		{"same day", "2025-09-03"},
		{"past day", "2025-09-01"},
		{"saturday", "2025-09-06"},
		{"sunday", "2025-09-07"},
		{"beyond booking window", "2025-12-01"},
		{"malformed", "05.09.2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := validBooking()
			dto.Date = tt.date
			_, err := svc.Create(context.Background(), dto)
			if !errors.Is(err, domain.ErrInvalidBookingDate) {
				t.Errorf("err = %v, want ErrInvalidBookingDate", err)
			}
		})
	}
}

func TestCreate_RejectsUnknownSlot(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	dto := validBooking()
	dto.TimeSlot = "15:00" // Friday is morning only
	if _, err := svc.Create(context.Background(), dto); !errors.Is(err, domain.ErrUnknownSlot) {
		t.Errorf("afternoon slot on morning-only day: err = %v, want ErrUnknownSlot", err)
	}

	dto.TimeSlot = "12:00" // walk-in window
	if _, err := svc.Create(context.Background(), dto); !errors.Is(err, domain.ErrUnknownSlot) {
		t.Errorf("walk-in window slot: err = %v, want ErrUnknownSlot", err)
	}
}

func TestCreate_DoubleBookingConflicts(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validBooking()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second := validBooking()
	second.Name = "John Doe"
	second.Email = "john@example.org"
	if _, err := svc.Create(ctx, second); !errors.Is(err, domain.ErrSlotTaken) {
		t.Errorf("second booking: err = %v, want ErrSlotTaken", err)
	}
}

func TestCreate_BlockedSlotConflicts(t *testing.T) {
	svc, repo, _ := newTestAppointmentService()
	ctx := context.Background()

	slot := "08:00"
	repo.blocked.blocks = append(repo.blocked.blocks, domain.BlockedSlot{
		ID:       "block-1",
		Date:     time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
		TimeSlot: &slot,
	})

	if _, err := svc.Create(ctx, validBooking()); !errors.Is(err, domain.ErrSlotBlocked) {
		t.Errorf("err = %v, want ErrSlotBlocked", err)
	}
}

func TestCancelByToken_FreesSlot(t *testing.T) {
	svc, _, notif := newTestAppointmentService()
	ctx := context.Background()

	appt, err := svc.Create(ctx, validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cancelled, err := svc.CancelByToken(ctx, appt.CancelToken)
	if err != nil {
		t.Fatalf("CancelByToken failed: %v", err)
	}
	if cancelled.Status != domain.AppointmentStatusCancelled {
		t.Errorf("status = %s, want CANCELLED", cancelled.Status)
	}
	if len(notif.cancellations) != 1 {
		t.Errorf("cancellation mail sent %d times, want 1", len(notif.cancellations))
	}

	// The slot is bookable again.
	rebook := validBooking()
	rebook.Name = "John Doe"
	if _, err := svc.Create(ctx, rebook); err != nil {
		t.Errorf("rebooking freed slot failed: %v", err)
	}
}

func TestCancelByToken_UnknownToken(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	if _, err := svc.CancelByToken(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCancelByToken_SecondCancelRejected(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	ctx := context.Background()

	appt, err := svc.Create(ctx, validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.CancelByToken(ctx, appt.CancelToken); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if _, err := svc.CancelByToken(ctx, appt.CancelToken); !errors.Is(err, domain.ErrAlreadyCancelled) {
		t.Errorf("second cancel: err = %v, want ErrAlreadyCancelled", err)
	}
}

func TestResolveDay_PartitionsSlots(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validBooking()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	day, err := svc.ResolveDay(ctx, time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ResolveDay failed: %v", err)
	}

	if len(day.BookedSlots) != 1 || day.BookedSlots[0] != "08:00" {
		t.Errorf("bookedSlots = %v, want [08:00]", day.BookedSlots)
	}
	if len(day.AvailableSlots)+len(day.BookedSlots) != len(day.AllSlots) {
		t.Errorf("partition broken: %d available + %d booked != %d total",
			len(day.AvailableSlots), len(day.BookedSlots), len(day.AllSlots))
	}

	all := make(map[string]bool, len(day.AllSlots))
	for _, s := range day.AllSlots {
		all[s] = true
	}
	for _, s := range day.AvailableSlots {
		if !all[s] {
			t.Errorf("available slot %q not in allSlots", s)
		}
		if s == "08:00" {
			t.Error("booked slot still listed as available")
		}
	}
}

func TestResolveDay_WholeDayBlock(t *testing.T) {
	svc, repo, _ := newTestAppointmentService()

	repo.blocked.blocks = append(repo.blocked.blocks, domain.BlockedSlot{
		ID:     "block-1",
		Date:   time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
		AllDay: true,
	})

	day, err := svc.ResolveDay(context.Background(), time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ResolveDay failed: %v", err)
	}
	if len(day.AvailableSlots) != 0 {
		t.Errorf("availableSlots = %v, want empty on fully blocked day", day.AvailableSlots)
	}
	if len(day.BookedSlots) != len(day.AllSlots) {
		t.Errorf("bookedSlots count = %d, want all %d", len(day.BookedSlots), len(day.AllSlots))
	}
}

func TestResolveDay_WeekendIsEmpty(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	day, err := svc.ResolveDay(context.Background(), time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ResolveDay failed: %v", err)
	}
	if len(day.AllSlots) != 0 || len(day.AvailableSlots) != 0 {
		t.Errorf("weekend day should have no slots, got all=%v available=%v",
			day.AllSlots, day.AvailableSlots)
	}
}

func TestAdminCreate_BypassesBookingWindow(t *testing.T) {
	svc, _, notif := newTestAppointmentService()

	appt, err := svc.AdminCreate(context.Background(), domain.AdminCreateAppointmentDTO{
		Date:     "2025-09-03", // today: forbidden for patients, fine for staff
		TimeSlot: "11:30",
		Name:     "Erika Mustermann",
		Email:    "erika@example.org",
		Phone:    "040 1234567",
	})
	if err != nil {
		t.Fatalf("AdminCreate failed: %v", err)
	}
	if appt.Status != domain.AppointmentStatusConfirmed {
		t.Errorf("status = %s, want default CONFIRMED", appt.Status)
	}
	if len(notif.statusChanges) != 1 {
		t.Errorf("confirmation mail sent %d times, want 1", len(notif.statusChanges))
	}
}

func TestAdminCreate_NoMailWithoutEmail(t *testing.T) {
	svc, _, notif := newTestAppointmentService()

	_, err := svc.AdminCreate(context.Background(), domain.AdminCreateAppointmentDTO{
		Date:     "2025-09-03",
		TimeSlot: "11:30",
		Name:     "Erika Mustermann",
		Phone:    "040 1234567",
	})
	if err != nil {
		t.Fatalf("AdminCreate failed: %v", err)
	}
	if len(notif.statusChanges) != 0 {
		t.Error("mail sent for phone booking without email")
	}
}

func TestAdminCreate_StillRejectsClosedDays(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	_, err := svc.AdminCreate(context.Background(), domain.AdminCreateAppointmentDTO{
		Date:     "2025-09-06", // Saturday
		TimeSlot: "08:00",
		Name:     "Erika Mustermann",
		Phone:    "040 1234567",
	})
	if !errors.Is(err, domain.ErrInvalidBookingDate) {
		t.Errorf("err = %v, want ErrInvalidBookingDate", err)
	}
}

func TestUpdateStatus_NotifiesOnChange(t *testing.T) {
	svc, _, notif := newTestAppointmentService()
	ctx := context.Background()

	appt, err := svc.Create(ctx, validBooking())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, appt.ID, domain.AppointmentStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != domain.AppointmentStatusConfirmed {
		t.Errorf("status = %s, want CONFIRMED", updated.Status)
	}
	if len(notif.statusChanges) != 1 {
		t.Errorf("status mail sent %d times, want 1", len(notif.statusChanges))
	}

	// Repeating the same status is a no-op, no second mail.
	if _, err := svc.UpdateStatus(ctx, appt.ID, domain.AppointmentStatusConfirmed); err != nil {
		t.Fatalf("idempotent UpdateStatus failed: %v", err)
	}
	if len(notif.statusChanges) != 1 {
		t.Errorf("status mail sent %d times after no-op, want 1", len(notif.statusChanges))
	}
}

func TestUpdateStatus_UnknownAppointment(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.AppointmentStatusConfirmed)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
