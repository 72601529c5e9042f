package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/jengzang/worldsynth/internal/config"
	"github.com/jengzang/worldsynth/internal/handler"
	"github.com/jengzang/worldsynth/internal/middleware"
	"github.com/jengzang/worldsynth/internal/repository"
	"github.com/jengzang/worldsynth/internal/service"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

// SetupRouter 设置路由，并在启动时写入内置预设
func SetupRouter(cfg *config.Config, db *sqlx.DB) (*gin.Engine, error) {
	presetService := service.NewPresetService(repository.NewPresetRepository(db))

	var extra []worldgen.Preset
	if cfg.PresetsFile != "" {
		loaded, err := config.LoadPresets(cfg.PresetsFile)
		if err != nil {
			return nil, err
		}
		extra = loaded
	}
	if err := presetService.Seed(extra); err != nil {
		return nil, fmt.Errorf("failed to seed presets: %w", err)
	}

	worldService := service.NewWorldService(presetService, repository.NewRunRepository(db), cfg.MaxResolution, cfg.Workers, nil)

	worldHandler := handler.NewWorldHandler(worldService)
	presetHandler := handler.NewPresetHandler(presetService)
	biomeHandler := handler.NewBiomeHandler()
	runHandler := handler.NewRunHandler(worldService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger("/health", "/api/v1/health"))
	r.Use(cors())

	// 健康检查
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "worldsynth API is running",
		})
	}
	r.GET("/health", health)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, time.Minute)))
	{
		api.GET("/health", health)

		// 生物群系图例
		api.GET("/biomes", biomeHandler.List)
		api.GET("/biomes/:name", biomeHandler.Get)

		// 预设：读取公开，写入需要 JWT
		presets := api.Group("/presets")
		{
			presets.GET("", presetHandler.List)
			presets.GET("/:name", presetHandler.Get)

			admin := presets.Group("", middleware.Auth(cfg.JWTSecret))
			admin.POST("", presetHandler.Create)
			admin.DELETE("/:name", presetHandler.Delete)
		}

		// 世界生成
		worlds := api.Group("/worlds")
		{
			worlds.POST("", worldHandler.Generate)
			worlds.POST("/cell", worldHandler.Cell)
		}

		// 生成记录
		runs := api.Group("/runs")
		{
			runs.GET("", runHandler.List)
			runs.GET("/:id", runHandler.Get)
		}
	}

	return r, nil
}

// cors 允许跨域访问
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Run-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
