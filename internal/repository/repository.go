package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"praxis/internal/domain"
)

type Repositories struct {
	Appointment AppointmentRepository
	BlockedSlot BlockedSlotRepository
	News        NewsRepository
	Contact     ContactRepository
	Admin       AdminRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Appointment: NewAppointmentRepository(db),
		BlockedSlot: NewBlockedSlotRepository(db),
		News:        NewNewsRepository(db),
		Contact:     NewContactRepository(db),
		Admin:       NewAdminRepository(db),
	}
}

type AppointmentRepository interface {
	// Create persists a new appointment. It re-checks inside a transaction
	// that the (date, slot) pair is neither booked nor blocked and returns
	// domain.ErrSlotTaken / domain.ErrSlotBlocked on conflict.
	Create(ctx context.Context, appt domain.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByCancelToken(ctx context.Context, token string) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	// BookedSlots returns the slot labels of non-cancelled appointments on date.
	BookedSlots(ctx context.Context, date time.Time) ([]string, error)
	Stats(ctx context.Context, now time.Time) (*domain.DashboardStats, error)
}

type BlockedSlotRepository interface {
	// Create persists a new block after re-checking that no whole-day block
	// and no equal-slot block exists for the date; returns
	// domain.ErrAlreadyBlocked on overlap.
	Create(ctx context.Context, block domain.BlockedSlot) (string, error)
	List(ctx context.Context, date *time.Time) ([]domain.BlockedSlot, error)
	Delete(ctx context.Context, id string) error
}

type NewsRepository interface {
	Create(ctx context.Context, post domain.NewsPost) (string, error)
	GetByID(ctx context.Context, id string) (*domain.NewsPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.NewsPost, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, post domain.NewsPost) error
	UpdateImageURL(ctx context.Context, id string, imageURL *string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, publishedOnly bool) ([]domain.NewsPost, error)
}

type ContactRepository interface {
	Create(ctx context.Context, msg domain.ContactMessage) (string, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}
