package main

import (
	"os"
	"time"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/config"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/database"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/handlers"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize file store")
	}

	r := handlers.SetupRouter(cfg, db, files)

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
