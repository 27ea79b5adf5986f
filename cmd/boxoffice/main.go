package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/pwalczak/theater-box-office/internal/app"
	"github.com/pwalczak/theater-box-office/internal/clock"
	"github.com/pwalczak/theater-box-office/internal/config"
	"github.com/pwalczak/theater-box-office/internal/export"
	"github.com/pwalczak/theater-box-office/internal/transport/cli"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		logger.Fatal("create export dir", zap.String("dir", cfg.ExportDir), zap.Error(err))
	}

	clk := clock.NewSystem()
	venue := app.NewVenueService(clk)
	exporter := export.NewExporter(cfg.ExportDir, clk)

	logger.Info("box office ready",
		zap.String("env", cfg.Env),
		zap.String("export_dir", cfg.ExportDir))

	menu := cli.NewMenu(venue, exporter, os.Stdin, os.Stdout, logger)
	menu.Run()

	logger.Info("box office closed")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
