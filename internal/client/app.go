package client

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/twconf/internal/config"
	"github.com/MKhiriev/twconf/internal/content"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/service"
	"github.com/MKhiriev/twconf/models"
)

// Command names.
const (
	CommandValidate = "validate"
	CommandPrint    = "print"
	CommandContent  = "content"
	CommandPlugins  = "plugins"
	CommandServe    = "serve"
	CommandWatch    = "watch"
	CommandRemote   = "remote"
	CommandVersion  = "version"
)

type command func(ctx context.Context, args []string) error

type App struct {
	cfg       *config.StructuredConfig
	services  *service.Services
	scanner   *content.Scanner
	buildInfo models.AppBuildInfo
	out       io.Writer

	commands map[string]command
	logger   *logger.Logger
}

// NewApp builds the application for one invocation. Rendered output goes to
// out; log entries go to logger.
func NewApp(cfg *config.StructuredConfig, services *service.Services, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNilServices
	}

	a := &App{
		cfg:       cfg,
		services:  services,
		scanner:   content.NewScanner(logger),
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}

	a.commands = map[string]command{
		CommandValidate: a.validate,
		CommandPrint:    a.print,
		CommandContent:  a.content,
		CommandPlugins:  a.plugins,
		CommandServe:    a.serve,
		CommandWatch:    a.watch,
		CommandRemote:   a.remote,
		CommandVersion:  a.version,
	}

	return a, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, command string, args []string) error {
	run, ok := a.commands[command]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	a.logger.Debug().Str("command", command).Strs("args", args).Msg("running command")
	return run(ctx, args)
}

// Commands returns the sorted command names.
func Commands() []string {
	names := []string{
		CommandValidate, CommandPrint, CommandContent, CommandPlugins,
		CommandServe, CommandWatch, CommandRemote, CommandVersion,
	}
	sort.Strings(names)
	return names
}

// configPath returns the file argument, or the configured build config path
// when none is given.
func (a *App) configPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return a.cfg.App.BuildConfigPath, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: %v", ErrTooManyArgs, args[1:])
	}
}

func (a *App) write(s string) error {
	_, err := io.WriteString(a.out, s+"\n")
	return err
}
