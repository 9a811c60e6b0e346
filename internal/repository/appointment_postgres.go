package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"praxis/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

const appointmentColumns = `id, date, time_slot, patient_name, patient_email, patient_phone, reason, status, cancel_token, language, created_at, updated_at`

func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Check-then-act re-check right before the insert. The partial unique
	// index on (date, time_slot) still catches the race between the check
	// and the insert.
	var count int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM appointments
		WHERE date = $1
		AND time_slot = $2
		AND status != 'CANCELLED'
	`, appt.Date, appt.TimeSlot).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("checking slot availability: %w", err)
	}
	if count > 0 {
		return "", domain.ErrSlotTaken
	}

	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM blocked_slots
		WHERE date = $1
		AND (all_day OR time_slot = $2)
	`, appt.Date, appt.TimeSlot).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("checking blocked slots: %w", err)
	}
	if count > 0 {
		return "", domain.ErrSlotBlocked
	}

	now := time.Now()
	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO appointments (date, time_slot, patient_name, patient_email, patient_phone, reason, status, cancel_token, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`,
		appt.Date,
		appt.TimeSlot,
		appt.PatientName,
		appt.PatientEmail,
		appt.PatientPhone,
		appt.Reason,
		appt.Status,
		appt.CancelToken,
		appt.Language,
		now,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "appointments_live_slot_idx" {
			// A concurrent writer won the slot between the check and the insert.
			return "", domain.ErrSlotTaken
		}
		return "", fmt.Errorf("inserting appointment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("committing transaction: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appt, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching appointment: %w", err)
	}
	return appt, nil
}

func (r *AppointmentRepo) GetByCancelToken(ctx context.Context, token string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE cancel_token = $1`

	appt, err := scanAppointment(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching appointment by token: %w", err)
	}
	return appt, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
	`, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM appointments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	baseQuery := `SELECT ` + appointmentColumns + ` FROM appointments`

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("date = $%d", argCount))
		args = append(args, *filter.Date)
		argCount++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}

	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argCount))
		args = append(args, *filter.FromDate)
		argCount++
	}

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC, time_slot ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}
		appointments = append(appointments, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading appointment rows: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) BookedSlots(ctx context.Context, date time.Time) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT time_slot
		FROM appointments
		WHERE date = $1
		AND status != 'CANCELLED'
	`, date)
	if err != nil {
		return nil, fmt.Errorf("fetching booked slots: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scanning booked slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading booked slots: %w", err)
	}

	return slots, nil
}

func (r *AppointmentRepo) Stats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// ISO week, Monday first.
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := today.AddDate(0, 0, 1-weekday)
	weekEnd := weekStart.AddDate(0, 0, 6)

	var stats domain.DashboardStats

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments WHERE date = $1 AND status != 'CANCELLED'
	`, today).Scan(&stats.TodayAppointments)
	if err != nil {
		return nil, fmt.Errorf("counting today's appointments: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments WHERE status = 'PENDING' AND date >= $1
	`, today).Scan(&stats.PendingAppointments)
	if err != nil {
		return nil, fmt.Errorf("counting pending appointments: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments WHERE date BETWEEN $1 AND $2 AND status != 'CANCELLED'
	`, weekStart, weekEnd).Scan(&stats.WeekAppointments)
	if err != nil {
		return nil, fmt.Errorf("counting week appointments: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT patient_email) FROM appointments WHERE patient_email != ''
	`).Scan(&stats.TotalPatients)
	if err != nil {
		return nil, fmt.Errorf("counting unique patients: %w", err)
	}

	return &stats, nil
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.Date,
		&appt.TimeSlot,
		&appt.PatientName,
		&appt.PatientEmail,
		&appt.PatientPhone,
		&appt.Reason,
		&appt.Status,
		&appt.CancelToken,
		&appt.Language,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}
