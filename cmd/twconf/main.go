package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/client"
	"github.com/MKhiriev/twconf/internal/config"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/service"
	"github.com/MKhiriev/twconf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		fmt.Fprintln(os.Stderr, client.Usage())
		return 2
	}
	command := args[0]

	log := logger.NewConsoleLogger("twconf-"+command, logger.DefaultLevel.String())
	cfg, rest, err := config.GetStructuredConfig(command, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, client.Usage())
		return 2
	}
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	if command == client.CommandServe {
		log = logger.NewLogger("twconf-server", cfg.App.LogLevel)
	} else {
		log = logger.NewConsoleLogger("twconf-"+command, cfg.App.LogLevel)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	buildInfo := getBuildInfo()
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return 1
	}

	app, err := client.NewApp(cfg, services, buildInfo, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx, command, rest); err != nil {
		if client.IsUsageError(err) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, client.Usage())
			return 2
		}
		fmt.Fprintln(os.Stderr, client.RenderError(err))
		log.Debug().Err(err).Str("field", buildconfig.FieldOf(err)).Msg("command failed")
		return 1
	}

	return 0
}

func getBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
