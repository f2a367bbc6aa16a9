package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/bradycon/gatherpoint/internal/server"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC1123Z,
		}),
	))

	if err := godotenv.Load(".env"); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	if err := server.Start(); err != nil {
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
