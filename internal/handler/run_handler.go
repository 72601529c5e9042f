package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/worldsynth/internal/service"
	"github.com/jengzang/worldsynth/pkg/response"
)

// RunHandler handles HTTP requests for the generation run log
type RunHandler struct {
	service *service.WorldService
}

// NewRunHandler creates a new run handler
func NewRunHandler(service *service.WorldService) *RunHandler {
	return &RunHandler{service: service}
}

// List handles GET /api/v1/runs?limit=20
func (h *RunHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		response.BadRequest(c, "Invalid limit", err)
		return
	}

	runs, err := h.service.Runs(limit)
	if err != nil {
		response.InternalError(c, "Failed to list runs", err)
		return
	}

	response.Success(c, gin.H{
		"data":  runs,
		"count": len(runs),
	})
}

// Get handles GET /api/v1/runs/:id
func (h *RunHandler) Get(c *gin.Context) {
	run, err := h.service.Run(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get run", err)
		return
	}
	if run == nil {
		response.NotFound(c, "Run not found")
		return
	}
	response.Success(c, run)
}
