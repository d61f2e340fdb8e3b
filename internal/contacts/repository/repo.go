package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classikwoods/site-backend/internal/contacts/domain"
)

// Repo provides persistence operations for contact submissions.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const contactColumns = `id, name, email, coalesce(phone, ''), message, status, created_at`

func scanContact(row pgx.Row) (*domain.ContactSubmission, error) {
	var c domain.ContactSubmission
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts one submission with status "new".
func (r *Repo) Create(ctx context.Context, nc domain.NewContactSubmission) (*domain.ContactSubmission, error) {
	q := fmt.Sprintf(`
INSERT INTO contact_submissions (name, email, phone, message)
VALUES ($1, $2, nullif($3,''), $4)
RETURNING %s;`, contactColumns)

	c, err := scanContact(r.db.QueryRow(ctx, q, nc.Name, nc.Email, nc.Phone, nc.Message))
	if err != nil {
		return nil, fmt.Errorf("insert contact submission: %w", err)
	}
	return c, nil
}

// List returns all submissions, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	q := fmt.Sprintf(`SELECT %s FROM contact_submissions ORDER BY created_at DESC;`, contactColumns)

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ContactSubmission, 0, 16)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus persists a new status and returns the updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.ContactSubmission, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	q := fmt.Sprintf(`
UPDATE contact_submissions SET status = $2
WHERE id = $1
RETURNING %s;`, contactColumns)

	c, err := scanContact(r.db.QueryRow(ctx, q, id, status))
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
	return c, nil
}
