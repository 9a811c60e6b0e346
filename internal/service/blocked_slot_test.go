package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"praxis/internal/domain"
)

func TestBlockedSlotCreate_SingleSlot(t *testing.T) {
	repo := &fakeBlockedSlotRepo{}
	svc := NewBlockedSlotService(repo, zap.NewNop())

	slot := "09:00"
	block, err := svc.Create(context.Background(), domain.CreateBlockedSlotDTO{
		Date:     "2025-09-05",
		TimeSlot: &slot,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if block.AllDay {
		t.Error("single-slot block marked all-day")
	}
	if block.TimeSlot == nil || *block.TimeSlot != "09:00" {
		t.Errorf("timeSlot = %v, want 09:00", block.TimeSlot)
	}
}

func TestBlockedSlotCreate_AllDayIgnoresSlot(t *testing.T) {
	repo := &fakeBlockedSlotRepo{}
	svc := NewBlockedSlotService(repo, zap.NewNop())

	slot := "09:00"
	block, err := svc.Create(context.Background(), domain.CreateBlockedSlotDTO{
		Date:     "2025-09-05",
		AllDay:   true,
		TimeSlot: &slot,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if block.TimeSlot != nil {
		t.Error("all-day block must not carry a time slot")
	}
}

func TestBlockedSlotCreate_Rejections(t *testing.T) {
	repo := &fakeBlockedSlotRepo{}
	svc := NewBlockedSlotService(repo, zap.NewNop())
	ctx := context.Background()

	badSlot := "12:00"
	tests := []struct {
		name string
		dto  domain.CreateBlockedSlotDTO
		want error
	}{
		{"weekend", domain.CreateBlockedSlotDTO{Date: "2025-09-06", AllDay: true}, domain.ErrInvalidBookingDate},
		{"malformed date", domain.CreateBlockedSlotDTO{Date: "today", AllDay: true}, domain.ErrInvalidBookingDate},
		{"missing slot", domain.CreateBlockedSlotDTO{Date: "2025-09-05"}, domain.ErrUnknownSlot},
		{"walk-in window slot", domain.CreateBlockedSlotDTO{Date: "2025-09-05", TimeSlot: &badSlot}, domain.ErrUnknownSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.dto); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBlockedSlotCreate_DuplicateRejected(t *testing.T) {
	repo := &fakeBlockedSlotRepo{}
	svc := NewBlockedSlotService(repo, zap.NewNop())
	ctx := context.Background()

	slot := "09:00"
	if _, err := svc.Create(ctx, domain.CreateBlockedSlotDTO{Date: "2025-09-05", TimeSlot: &slot}); err != nil {
		t.Fatalf("first block failed: %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateBlockedSlotDTO{Date: "2025-09-05", TimeSlot: &slot}); !errors.Is(err, domain.ErrAlreadyBlocked) {
		t.Errorf("duplicate block: err = %v, want ErrAlreadyBlocked", err)
	}

	// A whole-day block swallows later slot blocks too.
	if _, err := svc.Create(ctx, domain.CreateBlockedSlotDTO{Date: "2025-09-08", AllDay: true}); err != nil {
		t.Fatalf("all-day block failed: %v", err)
	}
	other := "10:00"
	if _, err := svc.Create(ctx, domain.CreateBlockedSlotDTO{Date: "2025-09-08", TimeSlot: &other}); !errors.Is(err, domain.ErrAlreadyBlocked) {
		t.Errorf("slot block on blocked day: err = %v, want ErrAlreadyBlocked", err)
	}
}

func TestBlockedSlotList_FilterByDate(t *testing.T) {
	repo := &fakeBlockedSlotRepo{}
	svc := NewBlockedSlotService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateBlockedSlotDTO{Date: "2025-09-05", AllDay: true}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateBlockedSlotDTO{Date: "2025-09-08", AllDay: true}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	date := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	blocks, err := svc.List(ctx, &date)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Errorf("got %d blocks for date, want 1", len(blocks))
	}

	all, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d blocks total, want 2", len(all))
	}
}
