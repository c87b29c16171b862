package main

import (
	"log"

	"hotel-console/cmd"
	"hotel-console/internal/data/gateway"
	"hotel-console/internal/usecase"
	"hotel-console/internal/wire"
	"hotel-console/pkg/cache"
	"hotel-console/pkg/hmsapi"
	"hotel-console/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("hms_base_url", config.HMS.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Upstream HMS API client and gateways
	client := hmsapi.NewClient(config.HMS, logger)
	gw := gateway.NewGateway(client, logger)

	// Optional list cache. A nil interface keeps caching disabled.
	var listCache usecase.ListCache
	if config.Redis.Enabled {
		listCache = cache.NewListCache(config.Redis)
		logger.Info("List cache enabled", zap.String("addr", config.Redis.Addr))
	}

	// Wire all dependencies
	app := wire.Wiring(gw, listCache, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
