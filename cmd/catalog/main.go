package main

import (
	"errors"
	"fmt"
	"os"

	"shop-catalog/internal/cli"
	"shop-catalog/internal/config"
	"shop-catalog/internal/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	fs.SetInterspersed(false)
	_ = fs.Parse(os.Args[1:])

	// Load configuration
	cfg := config.Load(fs)

	// Initialize logger
	log, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Debug("Starting catalog",
		zap.String("env", cfg.App.Env),
		zap.String("locale", cfg.Catalog.Locale),
		zap.String("fixture", cfg.Catalog.Fixture),
	)

	if err := cli.New(cfg, log, os.Stdout).Run(fs.Args()); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}
