package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/project/ticket-service/internal/app"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Usage:
//
//	ticket-service [flags]                 run the service
//	ticket-service token <userID> [flags]  print a bearer token for userID
func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "token" {
		if err := printToken(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	printBuildInfo()

	log := logger.NewLogger("ticket-service")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" && cfg.App.Version == config.Defaults().App.Version {
		cfg.App.Version = buildVersion
	}
	log = log.WithLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	if err = application.Run(ctx); err != nil {
		log.Error().Err(err).Msg("application stopped with error")
		stop()
		os.Exit(1)
	}
}

// printToken issues a token signed with the configured key. It serves local
// testing where no user service is running.
func printToken(args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("usage: ticket-service token <userID> [flags]")
	}

	userID := args[0]
	cfg, err := config.GetStructuredConfig(args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	token, err := service.NewAuthService(cfg.App, logger.Nop()).CreateToken(context.Background(), userID)
	if err != nil {
		return err
	}

	fmt.Println(token.SignedString)
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
