package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Gescomph/gescomph-portal/internal/buildinfo"
	"github.com/Gescomph/gescomph-portal/internal/client/cli"
	"github.com/Gescomph/gescomph-portal/internal/client/config"
	"github.com/Gescomph/gescomph-portal/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if !cfg.IsProduction() {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
