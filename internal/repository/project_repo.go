package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/project-showcase-api/internal/database"
	"github.com/project-showcase-api/internal/models"
)

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `
	id, title, description, category, client, duration, team_size,
	featured_image_url, overview, is_featured, is_published,
	view_count, like_count, published_at, created_at, updated_at
`

// GetAll retrieves every project record, most recent first
func (r *projectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

// GetByID retrieves a project by ID; returns nil when absent
func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Create inserts a new project with server-assigned timestamps
func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	overviewJSON, _ := json.Marshal(project.Overview)

	query := `
		INSERT INTO projects (
			id, title, description, category, client, duration, team_size,
			featured_image_url, overview, is_featured, is_published,
			view_count, like_count, published_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Title, project.Description, project.Category,
		project.Client, project.Duration, project.TeamSize,
		project.FeaturedImageURL, overviewJSON,
		project.IsFeatured, project.IsPublished,
		project.ViewCount, project.LikeCount, project.PublishedAt,
	)
	return err
}

// Update overwrites the mutable fields of an existing project
func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	overviewJSON, _ := json.Marshal(project.Overview)

	query := `
		UPDATE projects SET
			title = $2, description = $3, category = $4, client = $5,
			duration = $6, team_size = $7, featured_image_url = $8,
			overview = $9, is_featured = $10, is_published = $11,
			published_at = $12, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		project.ID, project.Title, project.Description, project.Category,
		project.Client, project.Duration, project.TeamSize,
		project.FeaturedImageURL, overviewJSON,
		project.IsFeatured, project.IsPublished, project.PublishedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a project by ID
func (r *projectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IncrementViewCount bumps the view counter by one.
// Read-modify-write without an optimistic guard: concurrent increments can
// lose an update, which is acceptable for best-effort telemetry.
func (r *projectRepo) IncrementViewCount(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "view_count")
}

// IncrementLikeCount bumps the like counter by one
func (r *projectRepo) IncrementLikeCount(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "like_count")
}

func (r *projectRepo) incrementCounter(ctx context.Context, id, column string) error {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT "+column+" FROM projects WHERE id = $1", id).Scan(&count)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE projects SET "+column+" = $1 WHERE id = $2", count+1, id)
	return err
}

// Count returns the total number of projects
func (r *projectRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(s scanner) (*models.Project, error) {
	var project models.Project
	var overviewJSON []byte
	var publishedAt sql.NullTime
	var createdAt, updatedAt time.Time

	err := s.Scan(
		&project.ID, &project.Title, &project.Description, &project.Category,
		&project.Client, &project.Duration, &project.TeamSize,
		&project.FeaturedImageURL, &overviewJSON,
		&project.IsFeatured, &project.IsPublished,
		&project.ViewCount, &project.LikeCount,
		&publishedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal(overviewJSON, &project.Overview)
	if publishedAt.Valid {
		project.PublishedAt = &publishedAt.Time
	}
	project.CreatedAt = createdAt
	project.UpdatedAt = updatedAt

	return &project, nil
}
