package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classikwoods/site-backend/internal/projects/domain"
)

// Repo provides persistence operations for portfolio projects.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `
id, title, description, image_url, project_type,
coalesce(materials, ''), coalesce(client_story, ''), featured, created_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectType,
		&p.Materials, &p.ClientStory, &p.Featured, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a project row carrying an already-uploaded image URL.
func (r *Repo) Create(ctx context.Context, np domain.NewProject) (*domain.Project, error) {
	if np.ID == uuid.Nil {
		np.ID = uuid.New()
	}

	q := fmt.Sprintf(`
INSERT INTO projects (id, title, description, image_url, project_type, materials, client_story)
VALUES ($1, $2, $3, $4, $5, nullif($6,''), nullif($7,''))
RETURNING %s;`, projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, q,
		np.ID, np.Title, np.Description, np.ImageURL, np.ProjectType, np.Materials, np.ClientStory))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

// List returns all projects, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	q := fmt.Sprintf(`SELECT %s FROM projects ORDER BY created_at DESC;`, projectColumns)

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single project by id.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1;`, projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ToggleFeatured flips the featured flag and returns the persisted row, so
// callers patch their local copy from what the store actually holds.
func (r *Repo) ToggleFeatured(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := fmt.Sprintf(`
UPDATE projects SET featured = NOT featured
WHERE id = $1
RETURNING %s;`, projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a project row. Returns false when the id matched nothing.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
