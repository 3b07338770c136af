package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server"
	"github.com/dmitrijs2005/motorpool/internal/server/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, flush, err := logging.New(cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer flush()

	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, err.Error())
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, err.Error())
	}
}
