package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tunnelpanel/internal/buildinfo"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/cli"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/config"
	"github.com/dmitrijs2005/tunnelpanel/internal/common"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	logger = logger.With("app", common.AppName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("%v", err)
	}
}
