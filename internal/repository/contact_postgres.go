package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"praxis/internal/domain"
)

type ContactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
	}
}

func (r *ContactRepo) Create(ctx context.Context, msg domain.ContactMessage) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, phone, message, read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id
	`,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Message,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting contact message: %w", err)
	}
	return id, nil
}

func (r *ContactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, message, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Message,
			&msg.Read,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading contact message rows: %w", err)
	}

	return messages, nil
}

func (r *ContactRepo) SetRead(ctx context.Context, id string, read bool) error {
	tag, err := r.db.Exec(ctx, "UPDATE contact_messages SET read = $1 WHERE id = $2", read, id)
	if err != nil {
		return fmt.Errorf("updating contact message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM contact_messages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting contact message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
