package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/daycast-app/daycast/internal/buildinfo"
	"github.com/daycast-app/daycast/internal/client/cli"
	"github.com/daycast-app/daycast/internal/client/config"
	"github.com/daycast-app/daycast/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
