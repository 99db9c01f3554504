package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory UserStore + JobStore used by the service tests.
type memStore struct {
	users map[uuid.UUID]*model.User
	jobs  map[uuid.UUID]*model.Job
	clock time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]*model.User),
		jobs:  make(map[uuid.UUID]*model.Job),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp so created_at ordering is
// deterministic.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) CreateUser(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	now := m.tick()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	u.LastLoginAt = &at
	u.UpdatedAt = m.tick()
	copied := *u
	return &copied, nil
}

func (m *memStore) SetAdmin(_ context.Context, id uuid.UUID, isAdmin bool) error {
	u, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.IsAdmin = isAdmin
	u.UpdatedAt = m.tick()
	return nil
}

func (m *memStore) ListUsersWithJobCounts(_ context.Context) ([]model.UserWithJobCount, error) {
	list := make([]model.UserWithJobCount, 0, len(m.users))
	for _, u := range m.users {
		count := 0
		for _, j := range m.jobs {
			if j.UserID == u.ID {
				count++
			}
		}
		list = append(list, model.UserWithJobCount{
			ID:          u.ID,
			Email:       u.Email,
			Name:        u.Name,
			IsAdmin:     u.IsAdmin,
			LastLoginAt: u.LastLoginAt,
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.UpdatedAt,
			JobCount:    count,
		})
	}
	sort.Slice(list, func(i, k int) bool { return list[i].CreatedAt.After(list[k].CreatedAt) })
	return list, nil
}

func (m *memStore) CreateJob(_ context.Context, job *model.Job) error {
	now := m.tick()
	job.CreatedAt = now
	job.UpdatedAt = now
	stored := *job
	m.jobs[job.ID] = &stored
	return nil
}

func (m *memStore) GetJobByID(_ context.Context, id uuid.UUID) (*model.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *j
	return &copied, nil
}

func (m *memStore) UpdateJob(_ context.Context, job *model.Job) error {
	if _, ok := m.jobs[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	job.UpdatedAt = m.tick()
	stored := *job
	stored.CreatedAt = m.jobs[job.ID].CreatedAt
	m.jobs[job.ID] = &stored
	return nil
}

func (m *memStore) DeleteJob(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.jobs[id]; !ok {
		return false, nil
	}
	delete(m.jobs, id)
	return true, nil
}

func (m *memStore) ListJobsByUser(_ context.Context, userID uuid.UUID) ([]model.Job, error) {
	var list []model.Job
	for _, j := range m.jobs {
		if j.UserID == userID {
			list = append(list, *j)
		}
	}
	sortJobsDesc(list)
	return list, nil
}

func (m *memStore) ListApprovedJobs(_ context.Context) ([]model.Job, error) {
	var list []model.Job
	for _, j := range m.jobs {
		if j.Approved {
			list = append(list, *j)
		}
	}
	sortJobsDesc(list)
	return list, nil
}

func (m *memStore) ListJobsWithOwners(_ context.Context, approved *bool) ([]model.JobWithOwner, error) {
	var list []model.JobWithOwner
	for _, j := range m.jobs {
		if approved != nil && j.Approved != *approved {
			continue
		}
		owner := model.JobOwner{ID: j.UserID}
		if u, ok := m.users[j.UserID]; ok {
			owner.Name = u.Name
			owner.Email = u.Email
		}
		list = append(list, model.JobWithOwner{Job: *j, Owner: owner})
	}
	sort.Slice(list, func(i, k int) bool { return list[i].CreatedAt.After(list[k].CreatedAt) })
	return list, nil
}

func (m *memStore) SetJobApproval(_ context.Context, id uuid.UUID, approved bool) (bool, error) {
	j, ok := m.jobs[id]
	if !ok {
		return false, nil
	}
	j.Approved = approved
	j.UpdatedAt = m.tick()
	return true, nil
}

func sortJobsDesc(list []model.Job) {
	sort.Slice(list, func(i, k int) bool { return list[i].CreatedAt.After(list[k].CreatedAt) })
}
