package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/twconf/internal/adapter"
	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/handler"
	"github.com/MKhiriev/twconf/internal/server"
	"github.com/MKhiriev/twconf/internal/workers"
)

func (a *App) validate(ctx context.Context, args []string) error {
	path, err := a.configPath(args)
	if err != nil {
		return err
	}

	report, err := a.services.BuildConfigService.Load(ctx, path)
	if err != nil {
		return err
	}

	return a.write(renderReport(path, report))
}

// print re-encodes the loaded configuration, with defaults applied, in the
// -format encoding or in the format of the input file.
func (a *App) print(ctx context.Context, args []string) error {
	path, err := a.configPath(args)
	if err != nil {
		return err
	}

	format, err := a.outputFormat(path)
	if err != nil {
		return err
	}

	report, err := a.services.BuildConfigService.Load(ctx, path)
	if err != nil {
		return err
	}

	data, err := buildconfig.Encode(report.Config, format)
	if err != nil {
		return err
	}

	_, err = a.out.Write(data)
	return err
}

func (a *App) outputFormat(path string) (buildconfig.Format, error) {
	if a.cfg.App.OutputFormat != "" {
		return buildconfig.ParseFormat(a.cfg.App.OutputFormat)
	}
	return buildconfig.FormatFromPath(path)
}

// content lists the files the content globs match under the project root.
func (a *App) content(ctx context.Context, args []string) error {
	path, err := a.configPath(args)
	if err != nil {
		return err
	}

	report, err := a.services.BuildConfigService.Load(ctx, path)
	if err != nil {
		return err
	}

	files, err := a.scanner.Scan(ctx, a.cfg.App.ProjectRoot, report.Config.ContentPaths)
	if err != nil {
		return err
	}

	return a.write(renderContent(report.Config.ContentPaths, files))
}

// plugins lists the built-in catalogue, or the catalogue of the server at
// -remote when one is set.
func (a *App) plugins(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, args)
	}

	if a.cfg.Adapter.HTTPAddress == "" {
		return a.write(renderPlugins(a.services.BuildConfigService.Plugins(ctx)))
	}

	validator, err := adapter.NewHTTPValidatorAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return err
	}

	list, err := validator.Plugins(ctx)
	if err != nil {
		return err
	}

	return a.write(renderPlugins(list))
}

// serve runs the HTTP validation service until SIGINT, SIGTERM or SIGQUIT.
func (a *App) serve(_ context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, args)
	}

	handlers, err := handler.NewHandlers(a.services, a.cfg.Server, a.logger)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return err
	}

	return srv.RunServer()
}

// watch reloads the configuration file whenever it changes and renders
// every outcome until ctx is cancelled. Load failures are rendered, not
// returned.
func (a *App) watch(ctx context.Context, args []string) error {
	path, err := a.configPath(args)
	if err != nil {
		return err
	}

	watcher, err := workers.NewWatchWorker(path, a.cfg.Workers.WatchInterval, a.services.BuildConfigService, a.onWatchResult, a.logger)
	if err != nil {
		return err
	}

	return workers.NewWorkers(watcher).Run(ctx)
}

func (a *App) onWatchResult(result workers.WatchResult) {
	if err := a.write(renderWatchResult(result)); err != nil {
		a.logger.Err(err).Msg("failed to render watch result")
	}
}

// remote validates the configuration file on the server at -remote.
func (a *App) remote(ctx context.Context, args []string) error {
	path, err := a.configPath(args)
	if err != nil {
		return err
	}

	format, err := buildconfig.FormatFromPath(path)
	if err != nil {
		return &buildconfig.ParseError{Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	validator, err := adapter.NewHTTPValidatorAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return err
	}

	report, err := validator.Validate(ctx, data, format)
	if err != nil {
		return err
	}

	return a.write(renderReport(path+" @ "+a.cfg.Adapter.HTTPAddress, report))
}

// version shows the build info, plus the server version when -remote is set.
func (a *App) version(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, args)
	}

	var serverVersion string
	if a.cfg.Adapter.HTTPAddress != "" {
		validator, err := adapter.NewHTTPValidatorAdapter(a.cfg.Adapter, a.logger)
		if err != nil {
			return err
		}

		if serverVersion, err = validator.Version(ctx); err != nil {
			return err
		}
	}

	return a.write(renderBuildInfo(a.buildInfo, a.services.AppInfoService.GetAppVersion(ctx), serverVersion))
}
