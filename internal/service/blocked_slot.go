package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"praxis/internal/domain"
	"praxis/internal/repository"
	"praxis/internal/schedule"
)

type BlockedSlotServiceImpl struct {
	repo   repository.BlockedSlotRepository
	logger *zap.Logger
}

func NewBlockedSlotService(repo repository.BlockedSlotRepository, logger *zap.Logger) *BlockedSlotServiceImpl {
	return &BlockedSlotServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *BlockedSlotServiceImpl) Create(ctx context.Context, dto domain.CreateBlockedSlotDTO) (*domain.BlockedSlot, error) {
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return nil, domain.ErrInvalidBookingDate
	}
	if len(schedule.SlotsForWeekday(date.Weekday())) == 0 {
		return nil, domain.ErrInvalidBookingDate
	}
	if !dto.AllDay {
		if dto.TimeSlot == nil || !schedule.IsKnownSlot(date, *dto.TimeSlot) {
			return nil, domain.ErrUnknownSlot
		}
	}

	block := domain.BlockedSlot{
		Date:   schedule.StartOfDay(date),
		AllDay: dto.AllDay,
		Reason: dto.Reason,
	}
	if !dto.AllDay {
		block.TimeSlot = dto.TimeSlot
	}

	id, err := s.repo.Create(ctx, block)
	if err != nil {
		return nil, err
	}
	block.ID = id

	s.logger.Info("period blocked",
		zap.String("date", dto.Date),
		zap.Bool("allDay", dto.AllDay))

	return &block, nil
}

func (s *BlockedSlotServiceImpl) List(ctx context.Context, date *time.Time) ([]domain.BlockedSlot, error) {
	return s.repo.List(ctx, date)
}

func (s *BlockedSlotServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
