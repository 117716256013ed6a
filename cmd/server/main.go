package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/will4skill/diet-api/config"
	"github.com/will4skill/diet-api/db"
	"github.com/will4skill/diet-api/logger"
	"github.com/will4skill/diet-api/middleware"
	"github.com/will4skill/diet-api/route"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/development.yaml"
	}

	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	defer logger.Close()

	gormDB, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close(gormDB)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	route.SetupRoutes(r, cfg, gormDB)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
