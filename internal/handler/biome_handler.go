package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/worldsynth/internal/biome"
	"github.com/jengzang/worldsynth/internal/models"
	"github.com/jengzang/worldsynth/pkg/response"
)

// BiomeHandler serves the biome legend
type BiomeHandler struct{}

// NewBiomeHandler creates a new biome handler
func NewBiomeHandler() *BiomeHandler {
	return &BiomeHandler{}
}

// List handles GET /api/v1/biomes
func (h *BiomeHandler) List(c *gin.Context) {
	all := biome.All()
	legend := make([]models.BiomeInfo, 0, len(all))
	for _, b := range all {
		legend = append(legend, biomeInfo(b))
	}
	response.Success(c, legend)
}

// Get handles GET /api/v1/biomes/:name
// 名称不区分大小写，空格和连字符等同于下划线
func (h *BiomeHandler) Get(c *gin.Context) {
	b, err := biome.Parse(c.Param("name"))
	if err != nil {
		response.NotFound(c, "Biome not found")
		return
	}
	response.Success(c, biomeInfo(b))
}

func biomeInfo(b biome.Biome) models.BiomeInfo {
	return models.BiomeInfo{
		Name:        b.String(),
		Color:       biome.Color(b),
		Description: biome.Description(b),
	}
}
