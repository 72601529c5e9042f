package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/worldsynth/internal/service"
	"github.com/jengzang/worldsynth/internal/worldgen"
	"github.com/jengzang/worldsynth/pkg/response"
)

// PresetHandler handles HTTP requests for presets
type PresetHandler struct {
	service *service.PresetService
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(service *service.PresetService) *PresetHandler {
	return &PresetHandler{service: service}
}

// List handles GET /api/v1/presets
func (h *PresetHandler) List(c *gin.Context) {
	presets, err := h.service.List()
	if err != nil {
		response.InternalError(c, "Failed to list presets", err)
		return
	}

	response.Success(c, gin.H{
		"data":  presets,
		"count": len(presets),
	})
}

// Get handles GET /api/v1/presets/:name
func (h *PresetHandler) Get(c *gin.Context) {
	preset, err := h.service.Get(c.Param("name"))
	if err != nil {
		writeError(c, "Failed to get preset", err)
		return
	}
	response.Success(c, preset)
}

// Create handles POST /api/v1/presets
func (h *PresetHandler) Create(c *gin.Context) {
	var p worldgen.Preset
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	if err := h.service.Save(p); err != nil {
		writeError(c, "Failed to save preset", err)
		return
	}

	saved, err := h.service.Get(p.Name)
	if err != nil {
		writeError(c, "Failed to load saved preset", err)
		return
	}
	response.Created(c, saved)
}

// Delete handles DELETE /api/v1/presets/:name
func (h *PresetHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("name")); err != nil {
		writeError(c, "Failed to delete preset", err)
		return
	}
	c.Status(http.StatusNoContent)
}
