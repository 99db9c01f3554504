package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/hamzahey/algorithm-ai/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListUsers godoc
// @Summary List all users with job counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserWithJobCount
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListJobs godoc
// @Summary List jobs for moderation
// @Description Optional approved=true/false filter; omitted returns all.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param approved query boolean false "Filter by approval flag"
// @Success 200 {array} model.JobWithOwner
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	var approved *bool
	if raw, present := c.GetQuery("approved"); present {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request"})
			return
		}
		approved = &parsed
	}

	jobs, err := h.svc.ListJobs(c.Request.Context(), approved)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ApproveJob godoc
// @Summary Set a job's approval flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body model.ApproveJobRequest true "Approval flag"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/jobs/{id}/approve [patch]
func (h *AdminHandler) ApproveJob(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	var req model.ApproveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request"})
		return
	}

	if err := h.svc.SetApproval(c.Request.Context(), jobID, *req.Approved); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// DeleteJob godoc
// @Summary Delete any job
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteJob(c.Request.Context(), jobID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}
