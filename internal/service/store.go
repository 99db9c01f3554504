package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
)

// UserStore is the credential-store surface the services depend on.
// *db.Postgres is the production implementation; tests use in-memory fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) (*model.User, error)
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error
	ListUsersWithJobCounts(ctx context.Context) ([]model.UserWithJobCount, error)
}

type JobStore interface {
	CreateJob(ctx context.Context, job *model.Job) error
	GetJobByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	UpdateJob(ctx context.Context, job *model.Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) (bool, error)
	ListJobsByUser(ctx context.Context, userID uuid.UUID) ([]model.Job, error)
	ListApprovedJobs(ctx context.Context) ([]model.Job, error)
	ListJobsWithOwners(ctx context.Context, approved *bool) ([]model.JobWithOwner, error)
	SetJobApproval(ctx context.Context, id uuid.UUID, approved bool) (bool, error)
}
