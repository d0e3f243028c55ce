// main.go
package main

import (
	"log"

	"campus-venue-booking/cmd"
	"campus-venue-booking/internal/data/repository"
	"campus-venue-booking/internal/wire"
	"campus-venue-booking/pkg/database"
	"campus-venue-booking/pkg/storage"
	"campus-venue-booking/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Document storage on local disk
	blobs, err := storage.NewFileStore(config.Storage.DocumentDir)
	if err != nil {
		logger.Fatal("Failed to init document storage", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Venue-date lock serializes conflicting submissions and approvals
	locker := database.NewVenueDateLocker(db, config.Booking.LockTimeoutMS)

	// Wire all dependencies
	app := wire.Wiring(repos, locker, blobs, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
