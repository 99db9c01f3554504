package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hamzahey/algorithm-ai/internal/service"
)

// SearchHandler serves the unauthenticated discovery search.
type SearchHandler struct {
	svc *service.JobService
}

func NewSearchHandler(svc *service.JobService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Search approved jobs
// @Description Free-text term plus comma-separated tags with and/or match
// mode. Only approved jobs are returned.
// @Tags jobs
// @Produce json
// @Param search query string false "Free-text term"
// @Param tags query string false "Comma-separated tags"
// @Param mode query string false "Tag match mode: and (default) or or"
// @Success 200 {array} model.PublicJob
// @Failure 500 {object} model.ErrorResponse
// @Router /jobs/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := service.SearchQuery{
		Text: c.Query("search"),
		Tags: splitTags(c.Query("tags")),
		Mode: service.SearchModeAnd,
	}
	if c.Query("mode") == string(service.SearchModeOr) {
		query.Mode = service.SearchModeOr
	}

	jobs, err := h.svc.Search(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
