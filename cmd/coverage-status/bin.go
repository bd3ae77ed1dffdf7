package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LambdaTest/coverage-status/config"
	"github.com/LambdaTest/coverage-status/pkg/coverage"
	"github.com/LambdaTest/coverage-status/pkg/fileutils"
	"github.com/LambdaTest/coverage-status/pkg/global"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
	"github.com/LambdaTest/coverage-status/pkg/requestutils"
	"github.com/LambdaTest/coverage-status/pkg/service/reporter"
	"github.com/LambdaTest/coverage-status/pkg/status"
	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:           global.BinaryName,
		Short:         "Post the coverage of a commit as a GitHub status",
		Long:          `coverage-status reads a cobertura xml or pycobertura diff json report and posts it as a commit status or check-run`,
		Version:       global.BinaryVersion,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	return &rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// cancel the pending request on C-c
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load environment variables from .env if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = cfg.LogFile
	}

	loggerInstance, err := lumber.ParseInstance(cfg.Logger)
	if err != nil {
		return err
	}
	logger, err := lumber.NewLogger(cfg.LogConfig, cfg.Verbose, loggerInstance, cfg.Token)
	if err != nil {
		return fmt.Errorf("could not instantiate logger: %w", err)
	}
	logger.Debugf("%s version: %s", global.BinaryName, global.BinaryVersion)

	if err := config.ValidateCfg(cfg, logger); err != nil {
		logger.Errorf("invalid configuration: %v", err)
		return err
	}

	// a single attempt, a failed call is terminal
	requests := requestutils.New(logger, cfg.Timeout, &backoff.StopBackOff{})
	publisher, err := status.New(cfg, requests, logger)
	if err != nil {
		logger.Errorf("failed to initialize status publisher: %v", err)
		return err
	}

	r := reporter.New(cfg, fileutils.NewResolver(logger), coverage.NewReader(logger), publisher, logger)
	return r.Report(ctx)
}
