package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/db"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/hamzahey/algorithm-ai/internal/tagset"
)

type JobService struct {
	jobs JobStore
}

func NewJobService(jobs JobStore) *JobService {
	return &JobService{jobs: jobs}
}

// ListForUser returns the caller's own jobs regardless of status or
// approval, newest first.
func (s *JobService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Job, error) {
	return s.jobs.ListJobsByUser(ctx, userID)
}

func (s *JobService) Create(ctx context.Context, userID uuid.UUID, req model.CreateJobRequest) (*model.Job, error) {
	tags := tagset.Normalize(req.Tags)
	if len(tags) == 0 {
		return nil, ErrInvalidInput
	}

	job := &model.Job{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Description: req.Description,
		Salary:      strings.TrimSpace(req.Salary),
		Tags:        tags,
		Status:      model.JobStatusActive,
		Approved:    false,
	}
	if job.Title == "" || job.Company == "" || job.Description == "" || job.Salary == "" {
		return nil, ErrInvalidInput
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// ensureOwnership loads the job and verifies the caller owns it: ErrNotFound
// when the id does not resolve, ErrForbidden on an owner mismatch.
func (s *JobService) ensureOwnership(ctx context.Context, userID, jobID uuid.UUID) (*model.Job, error) {
	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.UserID != userID {
		return nil, ErrForbidden
	}
	return job, nil
}

func (s *JobService) Get(ctx context.Context, userID, jobID uuid.UUID) (*model.Job, error) {
	return s.ensureOwnership(ctx, userID, jobID)
}

func (s *JobService) Update(ctx context.Context, userID, jobID uuid.UUID, req model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.ensureOwnership(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil {
		job.Company = strings.TrimSpace(*req.Company)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Salary != nil {
		job.Salary = strings.TrimSpace(*req.Salary)
	}
	if req.Tags != nil {
		job.Tags = tagset.Normalize(req.Tags)
	}
	if req.Status != nil {
		status := model.JobStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		if !model.ValidJobStatus(status) {
			return nil, ErrInvalidInput
		}
		job.Status = status
	}

	if err := s.jobs.UpdateJob(ctx, job); err != nil {
		if db.IsNoRows(err) {
			// Deleted between the ownership check and the write.
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	if _, err := s.ensureOwnership(ctx, userID, jobID); err != nil {
		return err
	}
	if _, err := s.jobs.DeleteJob(ctx, jobID); err != nil {
		return err
	}
	return nil
}

type SearchMode string

const (
	SearchModeAnd SearchMode = "and"
	SearchModeOr  SearchMode = "or"
)

type SearchQuery struct {
	Text string
	Tags []string
	Mode SearchMode
}

// Search is the public discovery path. Only approved jobs are visible, no
// matter what filters are supplied; status does not gate visibility. The
// text term matches case-insensitively as a substring against title,
// company, description, and salary. Tag matching is superset (and) or
// any-overlap (or); text and tag predicates combine with logical AND.
func (s *JobService) Search(ctx context.Context, q SearchQuery) ([]model.PublicJob, error) {
	jobs, err := s.jobs.ListApprovedJobs(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(q.Text))
	wantTags := tagset.Normalize(q.Tags)

	results := make([]model.PublicJob, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if term != "" && !matchesText(job, term) {
			continue
		}
		if len(wantTags) > 0 {
			set := tagset.New(job.Tags)
			if q.Mode == SearchModeOr {
				if !set.ContainsAny(wantTags) {
					continue
				}
			} else if !set.ContainsAll(wantTags) {
				continue
			}
		}
		results = append(results, job.Public())
	}
	return results, nil
}

func matchesText(job *model.Job, term string) bool {
	return strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Company), term) ||
		strings.Contains(strings.ToLower(job.Description), term) ||
		strings.Contains(strings.ToLower(job.Salary), term)
}
