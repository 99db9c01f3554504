package handler

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubStore backs the handler tests with in-memory users and jobs.
type stubStore struct {
	users map[uuid.UUID]*model.User
	jobs  map[uuid.UUID]*model.Job
	seq   int
}

func newStubStore() *stubStore {
	return &stubStore{
		users: make(map[uuid.UUID]*model.User),
		jobs:  make(map[uuid.UUID]*model.Job),
	}
}

func (s *stubStore) next() time.Time {
	s.seq++
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Second)
}

func (s *stubStore) addUser(email, name string, isAdmin bool) *model.User {
	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: "x",
		IsAdmin:      isAdmin,
		CreatedAt:    s.next(),
	}
	s.users[user.ID] = user
	return user
}

func (s *stubStore) addJob(userID uuid.UUID, title string, tags []string, approved bool) *model.Job {
	job := &model.Job{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Company:   "Acme",
		Salary:    "$100k",
		Tags:      tags,
		Status:    model.JobStatusActive,
		Approved:  approved,
		CreatedAt: s.next(),
	}
	s.jobs[job.ID] = job
	return job
}

func (s *stubStore) CreateUser(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	user.CreatedAt = s.next()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *stubStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubStore) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (s *stubStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	u.LastLoginAt = &at
	copied := *u
	return &copied, nil
}

func (s *stubStore) SetAdmin(_ context.Context, id uuid.UUID, isAdmin bool) error {
	u, ok := s.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.IsAdmin = isAdmin
	return nil
}

func (s *stubStore) ListUsersWithJobCounts(_ context.Context) ([]model.UserWithJobCount, error) {
	list := make([]model.UserWithJobCount, 0, len(s.users))
	for _, u := range s.users {
		count := 0
		for _, j := range s.jobs {
			if j.UserID == u.ID {
				count++
			}
		}
		list = append(list, model.UserWithJobCount{
			ID: u.ID, Email: u.Email, Name: u.Name, IsAdmin: u.IsAdmin,
			LastLoginAt: u.LastLoginAt, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
			JobCount: count,
		})
	}
	sort.Slice(list, func(i, k int) bool { return list[i].CreatedAt.After(list[k].CreatedAt) })
	return list, nil
}

func (s *stubStore) CreateJob(_ context.Context, job *model.Job) error {
	job.CreatedAt = s.next()
	job.UpdatedAt = job.CreatedAt
	stored := *job
	s.jobs[job.ID] = &stored
	return nil
}

func (s *stubStore) GetJobByID(_ context.Context, id uuid.UUID) (*model.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *j
	return &copied, nil
}

func (s *stubStore) UpdateJob(_ context.Context, job *model.Job) error {
	if _, ok := s.jobs[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *job
	s.jobs[job.ID] = &stored
	return nil
}

func (s *stubStore) DeleteJob(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.jobs[id]; !ok {
		return false, nil
	}
	delete(s.jobs, id)
	return true, nil
}

func (s *stubStore) ListJobsByUser(_ context.Context, userID uuid.UUID) ([]model.Job, error) {
	var list []model.Job
	for _, j := range s.jobs {
		if j.UserID == userID {
			list = append(list, *j)
		}
	}
	sort.Slice(list, func(i, k int) bool { return list[i].CreatedAt.After(list[k].CreatedAt) })
	return list, nil
}

func (s *stubStore) ListApprovedJobs(_ context.Context) ([]model.Job, error) {
	var list []model.Job
	for _, j := range s.jobs {
		if j.Approved {
			list = append(list, *j)
		}
	}
	sort.Slice(list, func(i, k int) bool { return list[i].CreatedAt.After(list[k].CreatedAt) })
	return list, nil
}

func (s *stubStore) ListJobsWithOwners(_ context.Context, approved *bool) ([]model.JobWithOwner, error) {
	var list []model.JobWithOwner
	for _, j := range s.jobs {
		if approved != nil && j.Approved != *approved {
			continue
		}
		owner := model.JobOwner{ID: j.UserID}
		if u, ok := s.users[j.UserID]; ok {
			owner.Name = u.Name
			owner.Email = u.Email
		}
		list = append(list, model.JobWithOwner{Job: *j, Owner: owner})
	}
	sort.Slice(list, func(i, k int) bool { return list[i].CreatedAt.After(list[k].CreatedAt) })
	return list, nil
}

func (s *stubStore) SetJobApproval(_ context.Context, id uuid.UUID, approved bool) (bool, error) {
	j, ok := s.jobs[id]
	if !ok {
		return false, nil
	}
	j.Approved = approved
	return true, nil
}
