package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/worldsynth/internal/models"
	"github.com/jengzang/worldsynth/internal/service"
	"github.com/jengzang/worldsynth/pkg/response"
)

// WorldHandler handles HTTP requests for world generation
type WorldHandler struct {
	service *service.WorldService
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(service *service.WorldService) *WorldHandler {
	return &WorldHandler{service: service}
}

// Generate handles POST /api/v1/worlds
func (h *WorldHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	if req.Format != "" && req.Format != models.FormatJSON && req.Format != models.FormatGeoJSON {
		response.BadRequest(c, fmt.Sprintf("Unknown format %q", req.Format), nil)
		return
	}

	world, run, err := h.service.Generate(c.Request.Context(), &req)
	if err != nil {
		writeError(c, "Failed to generate world", err)
		return
	}

	c.Header("X-Run-ID", run.ID)
	if req.Format == models.FormatGeoJSON {
		// GeoJSON is returned bare so map clients can consume it directly.
		c.JSON(http.StatusOK, world.FeatureCollection())
		return
	}
	response.Success(c, service.Response(world, run, req.IncludeCells))
}

// Cell handles POST /api/v1/worlds/cell
func (h *WorldHandler) Cell(c *gin.Context) {
	var req models.CellRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	rec, ok, err := h.service.Cell(c.Request.Context(), &req)
	if err != nil {
		writeError(c, "Failed to look up cell", err)
		return
	}
	if !ok {
		response.NotFound(c, "Cell not found")
		return
	}
	response.Success(c, rec)
}
