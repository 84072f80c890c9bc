package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/sportradar/sportradar-cli/internal/client/cli"
	"github.com/sportradar/sportradar-cli/internal/client/config"
	"github.com/sportradar/sportradar-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
