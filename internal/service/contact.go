package service

import (
	"context"

	"go.uber.org/zap"

	"praxis/internal/domain"
	"praxis/internal/notifier"
	"praxis/internal/repository"
	"praxis/pkg/validator"
)

type ContactServiceImpl struct {
	repo     repository.ContactRepository
	notifier notifier.Notifier
	logger   *zap.Logger
}

func NewContactService(repo repository.ContactRepository, notif notifier.Notifier, logger *zap.Logger) *ContactServiceImpl {
	return &ContactServiceImpl{
		repo:     repo,
		notifier: notif,
		logger:   logger,
	}
}

func (s *ContactServiceImpl) Create(ctx context.Context, dto domain.CreateContactMessageDTO) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		Name:    validator.SanitizeString(dto.Name),
		Email:   validator.SanitizeString(dto.Email),
		Message: validator.SanitizeString(dto.Message),
	}
	if dto.Phone != nil && *dto.Phone != "" {
		phone := validator.FormatPhone(*dto.Phone)
		msg.Phone = &phone
	}

	id, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}
	msg.ID = id

	if err := s.notifier.SendContactNotification(ctx, &msg); err != nil {
		s.logger.Warn("contact notification mail failed",
			zap.String("messageID", id), zap.Error(err))
	}

	s.logger.Info("contact message received", zap.String("messageID", id))

	return &msg, nil
}

func (s *ContactServiceImpl) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactServiceImpl) SetRead(ctx context.Context, id string, read bool) error {
	return s.repo.SetRead(ctx, id, read)
}

func (s *ContactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
