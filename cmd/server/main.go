package main

import (
	"log"

	"github.com/jengzang/worldsynth/internal/api"
	"github.com/jengzang/worldsynth/internal/config"
	"github.com/jengzang/worldsynth/internal/database"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化数据库
	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	// 初始化路由
	router, err := api.SetupRouter(cfg, database.GetDB())
	if err != nil {
		log.Fatal("Failed to set up router:", err)
	}

	// 启动服务器
	log.Printf("Server starting on port %s (max resolution %d, %d workers)", cfg.Port, cfg.MaxResolution, cfg.Workers)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
