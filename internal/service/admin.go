package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
)

// AdminService backs the moderation console. Callers are expected to have
// passed the admin middleware already; none of these operations re-check
// privilege or ownership.
type AdminService struct {
	users UserStore
	jobs  JobStore
}

func NewAdminService(users UserStore, jobs JobStore) *AdminService {
	return &AdminService{users: users, jobs: jobs}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]model.UserWithJobCount, error) {
	return s.users.ListUsersWithJobCounts(ctx)
}

// ListJobs returns every job with its owner projection, optionally filtered
// by approval. Unlike public search, unapproved jobs are included.
func (s *AdminService) ListJobs(ctx context.Context, approved *bool) ([]model.JobWithOwner, error) {
	return s.jobs.ListJobsWithOwners(ctx, approved)
}

func (s *AdminService) SetApproval(ctx context.Context, jobID uuid.UUID, approved bool) error {
	ok, err := s.jobs.SetJobApproval(ctx, jobID, approved)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	ok, err := s.jobs.DeleteJob(ctx, jobID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
