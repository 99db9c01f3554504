package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
)

const jobColumns = `id, user_id, title, company, description, salary, tags, status, approved, created_at, updated_at`

func scanJob(row interface{ Scan(dest ...any) error }, job *model.Job) error {
	return row.Scan(
		&job.ID,
		&job.UserID,
		&job.Title,
		&job.Company,
		&job.Description,
		&job.Salary,
		&job.Tags,
		&job.Status,
		&job.Approved,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
}

func (db *Postgres) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (id, user_id, title, company, description, salary, tags, status, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return db.Pool.QueryRow(ctx, query,
		job.ID,
		job.UserID,
		job.Title,
		job.Company,
		job.Description,
		job.Salary,
		job.Tags,
		job.Status,
		job.Approved,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
}

func (db *Postgres) GetJobByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job model.Job
	if err := scanJob(db.Pool.QueryRow(ctx, query, id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (db *Postgres) UpdateJob(ctx context.Context, job *model.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, company = $3, description = $4, salary = $5, tags = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return db.Pool.QueryRow(ctx, query,
		job.ID,
		job.Title,
		job.Company,
		job.Description,
		job.Salary,
		job.Tags,
		job.Status,
	).Scan(&job.UpdatedAt)
}

func (db *Postgres) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) ListJobsByUser(ctx context.Context, userID uuid.UUID) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

// ListApprovedJobs returns every approved job, newest first. Text and tag
// filtering happens in the search service on top of this listing.
func (db *Postgres) ListApprovedJobs(ctx context.Context) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE approved = TRUE ORDER BY created_at DESC`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func collectJobs(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]model.Job, error) {
	var list []model.Job
	for rows.Next() {
		var job model.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		list = append(list, job)
	}
	if list == nil {
		list = []model.Job{}
	}
	return list, rows.Err()
}

// ListJobsWithOwners is the moderation listing: every job joined with its
// owner, optionally filtered by approval, ignoring the public approval gate.
func (db *Postgres) ListJobsWithOwners(ctx context.Context, approved *bool) ([]model.JobWithOwner, error) {
	query := `
		SELECT j.id, j.user_id, j.title, j.company, j.description, j.salary, j.tags, j.status, j.approved, j.created_at, j.updated_at,
		       u.id, u.name, u.email
		FROM jobs j
		JOIN users u ON u.id = j.user_id
	`
	args := []any{}
	if approved != nil {
		query += ` WHERE j.approved = $1`
		args = append(args, *approved)
	}
	query += ` ORDER BY j.created_at DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.JobWithOwner
	for rows.Next() {
		var j model.JobWithOwner
		if err := rows.Scan(
			&j.ID,
			&j.UserID,
			&j.Title,
			&j.Company,
			&j.Description,
			&j.Salary,
			&j.Tags,
			&j.Status,
			&j.Approved,
			&j.CreatedAt,
			&j.UpdatedAt,
			&j.Owner.ID,
			&j.Owner.Name,
			&j.Owner.Email,
		); err != nil {
			return nil, err
		}
		list = append(list, j)
	}
	if list == nil {
		list = []model.JobWithOwner{}
	}
	return list, rows.Err()
}

func (db *Postgres) SetJobApproval(ctx context.Context, id uuid.UUID, approved bool) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE jobs
		SET approved = $2, updated_at = NOW()
		WHERE id = $1
	`, id, approved)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
