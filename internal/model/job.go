package model

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusActive   JobStatus = "ACTIVE"
	JobStatusPaused   JobStatus = "PAUSED"
	JobStatusClosed   JobStatus = "CLOSED"
	JobStatusArchived JobStatus = "ARCHIVED"
)

// ValidJobStatus reports whether s is one of the known status values.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusActive, JobStatusPaused, JobStatusClosed, JobStatusArchived:
		return true
	}
	return false
}

type Job struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Salary      string    `json:"salary"`
	Tags        []string  `json:"tags"`
	Status      JobStatus `json:"status"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublicJob is the discovery-search projection. It deliberately omits the
// owner reference and the approval flag.
type PublicJob struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Salary      string    `json:"salary"`
	Tags        []string  `json:"tags"`
	Status      JobStatus `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (j *Job) Public() PublicJob {
	return PublicJob{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Description: j.Description,
		Salary:      j.Salary,
		Tags:        j.Tags,
		Status:      j.Status,
		CreatedAt:   j.CreatedAt,
	}
}

// JobOwner is the minimal owner projection attached to moderation listings.
type JobOwner struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type JobWithOwner struct {
	Job
	Owner JobOwner `json:"user"`
}
