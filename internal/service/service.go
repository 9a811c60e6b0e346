package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"praxis/config"
	"praxis/internal/domain"
	"praxis/internal/notifier"
	"praxis/internal/repository"
	"praxis/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	Notifier    notifier.Notifier
	FileStorage storage.FileStorage
}

type Services struct {
	Appointment AppointmentService
	BlockedSlot BlockedSlotService
	News        NewsService
	Contact     ContactService
	Auth        AuthService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Appointment: NewAppointmentService(deps.Repos.Appointment, deps.Repos.BlockedSlot, deps.Notifier, deps.Logger),
		BlockedSlot: NewBlockedSlotService(deps.Repos.BlockedSlot, deps.Logger),
		News:        NewNewsService(deps.Repos.News, deps.FileStorage, deps.Logger),
		Contact:     NewContactService(deps.Repos.Contact, deps.Notifier, deps.Logger),
		Auth:        NewAuthService(deps.Repos.Admin, deps.Config.JWT, deps.Logger),
	}
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	AdminCreate(ctx context.Context, dto domain.AdminCreateAppointmentDTO) (*domain.Appointment, error)
	ResolveDay(ctx context.Context, date time.Time) (*domain.DayAvailability, error)
	CancelByToken(ctx context.Context, token string) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type BlockedSlotService interface {
	Create(ctx context.Context, dto domain.CreateBlockedSlotDTO) (*domain.BlockedSlot, error)
	List(ctx context.Context, date *time.Time) ([]domain.BlockedSlot, error)
	Delete(ctx context.Context, id string) error
}

type NewsService interface {
	Create(ctx context.Context, dto domain.CreateNewsPostDTO) (*domain.NewsPost, error)
	GetByID(ctx context.Context, id string) (*domain.NewsPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.NewsPost, error)
	Update(ctx context.Context, id string, dto domain.UpdateNewsPostDTO) (*domain.NewsPost, error)
	UploadImage(ctx context.Context, id string, data []byte, filename string) (string, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, publishedOnly bool) ([]domain.NewsPost, error)
}

type ContactService interface {
	Create(ctx context.Context, dto domain.CreateContactMessageDTO) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest) (*domain.LoginResponse, error)
	ParseToken(tokenString string) (string, error)
}
