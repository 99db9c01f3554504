package model

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Salary      string   `json:"salary" binding:"required"`
	Tags        []string `json:"tags" binding:"required,min=1"`
}

// UpdateJobRequest carries a field-level partial update. Nil pointers and a
// nil tag slice mean "leave unchanged".
type UpdateJobRequest struct {
	Title       *string  `json:"title"`
	Company     *string  `json:"company"`
	Description *string  `json:"description"`
	Salary      *string  `json:"salary"`
	Tags        []string `json:"tags"`
	Status      *string  `json:"status"`
}

type ApproveJobRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
