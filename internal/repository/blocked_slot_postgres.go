package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"praxis/internal/domain"
)

type BlockedSlotRepo struct {
	db *pgxpool.Pool
}

func NewBlockedSlotRepository(db *pgxpool.Pool) *BlockedSlotRepo {
	return &BlockedSlotRepo{
		db: db,
	}
}

func (r *BlockedSlotRepo) Create(ctx context.Context, block domain.BlockedSlot) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// A whole-day block swallows everything on that date; a slot block only
	// collides with a whole-day block or the same label.
	var count int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM blocked_slots
		WHERE date = $1
		AND (all_day OR ($2::varchar IS NOT NULL AND time_slot = $2))
	`, block.Date, block.TimeSlot).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("checking existing blocks: %w", err)
	}
	if count > 0 {
		return "", domain.ErrAlreadyBlocked
	}

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO blocked_slots (date, all_day, time_slot, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		block.Date,
		block.AllDay,
		block.TimeSlot,
		block.Reason,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting blocked slot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("committing transaction: %w", err)
	}

	return id, nil
}

func (r *BlockedSlotRepo) List(ctx context.Context, date *time.Time) ([]domain.BlockedSlot, error) {
	query := `
		SELECT id, date, all_day, time_slot, reason, created_at
		FROM blocked_slots
	`
	var args []interface{}
	if date != nil {
		query += " WHERE date = $1"
		args = append(args, *date)
	}
	query += " ORDER BY date ASC, time_slot ASC NULLS FIRST"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing blocked slots: %w", err)
	}
	defer rows.Close()

	var blocks []domain.BlockedSlot
	for rows.Next() {
		var block domain.BlockedSlot
		err := rows.Scan(
			&block.ID,
			&block.Date,
			&block.AllDay,
			&block.TimeSlot,
			&block.Reason,
			&block.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning blocked slot: %w", err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading blocked slot rows: %w", err)
	}

	return blocks, nil
}

func (r *BlockedSlotRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM blocked_slots WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting blocked slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
