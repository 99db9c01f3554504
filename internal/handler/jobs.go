package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/hamzahey/algorithm-ai/internal/service"
)

type JobHandler struct {
	svc *service.JobService
}

func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// List godoc
// @Summary List the caller's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Job
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	user := GetAuthUser(c)
	jobs, err := h.svc.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Create godoc
// @Summary Post a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateJobRequest true "Job fields"
// @Success 201 {object} model.Job
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request"})
		return
	}

	user := GetAuthUser(c)
	job, err := h.svc.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Get godoc
// @Summary Get one of the caller's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	user := GetAuthUser(c)
	job, err := h.svc.Get(c.Request.Context(), user.ID, jobID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update godoc
// @Summary Partially update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body model.UpdateJobRequest true "Fields to change"
// @Success 200 {object} model.Job
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request"})
		return
	}

	user := GetAuthUser(c)
	job, err := h.svc.Update(c.Request.Context(), user.ID, jobID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	user := GetAuthUser(c)
	if err := h.svc.Delete(c.Request.Context(), user.ID, jobID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Job deleted"})
}

// An unparseable id cannot resolve to a job, so it reads as not found rather
// than a bad request.
func parseJobID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Message: "Job not found"})
		return uuid.Nil, false
	}
	return id, true
}
