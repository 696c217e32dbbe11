package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vbonduro/unitregistry/internal/cli"
	"github.com/vbonduro/unitregistry/internal/config"
	"github.com/vbonduro/unitregistry/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Printf("failed to initialize logger: %v", err)
		return 1
	}
	defer cleanup()

	runner := cli.NewRunner(cfg, logger, os.Stdout)
	defer func() {
		if err := runner.Close(); err != nil {
			logger.Error("failed to close unit store", "error", err)
		}
	}()

	if err := runner.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCode(err)
	}
	return 0
}
