package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classikwoods/site-backend/internal/bookings/domain"
)

// Repo provides persistence operations for booking submissions.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const bookingColumns = `
id, name, email, coalesce(phone, ''), project_type, preferred_date,
budget, message, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.BookingSubmission, error) {
	var b domain.BookingSubmission
	err := row.Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.ProjectType, &b.PreferredDate,
		&b.Budget, &b.Message, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts one submission with status "pending".
func (r *Repo) Create(ctx context.Context, nb domain.NewBookingSubmission) (*domain.BookingSubmission, error) {
	q := fmt.Sprintf(`
INSERT INTO booking_submissions (name, email, phone, project_type, preferred_date, budget, message)
VALUES ($1, $2, nullif($3,''), $4, $5, $6, $7)
RETURNING %s;`, bookingColumns)

	b, err := scanBooking(r.db.QueryRow(ctx, q,
		nb.Name, nb.Email, nb.Phone, nb.ProjectType, nb.PreferredDate, nb.Budget, nb.Message))
	if err != nil {
		return nil, fmt.Errorf("insert booking submission: %w", err)
	}
	return b, nil
}

// List returns all submissions, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.BookingSubmission, error) {
	q := fmt.Sprintf(`SELECT %s FROM booking_submissions ORDER BY created_at DESC;`, bookingColumns)

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.BookingSubmission, 0, 16)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus persists a new status, stamps updated_at, and returns the
// updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.BookingSubmission, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	q := fmt.Sprintf(`
UPDATE booking_submissions SET status = $2, updated_at = now()
WHERE id = $1
RETURNING %s;`, bookingColumns)

	b, err := scanBooking(r.db.QueryRow(ctx, q, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		// 23514: the status CHECK constraint rejected the value.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return nil, domain.ErrInvalidStatus
		}
		return nil, err
	}
	return b, nil
}
