package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/briangreenhill/ftracker/internal/activity"
	"github.com/briangreenhill/ftracker/internal/config"
)

func main() {
	cfg := config.Load()

	w := os.Stdout
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	activityService := activity.NewService(logger)

	if err := run(w, os.Args[1:], cfg, logger, activityService); err != nil {
		logger.Error("Error running ftracker", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, cfg config.Config, logger *slog.Logger, activityService *activity.Service) error {
	cli := activity.NewCLI(w, cfg, logger, activityService)

	if err := cli.Run(args); err != nil {
		return err
	}

	return nil
}
