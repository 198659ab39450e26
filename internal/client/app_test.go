package client

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/twconf/internal/adapter"
	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/config"
	handlerhttp "github.com/MKhiriev/twconf/internal/handler/http"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/service"
	"github.com/MKhiriev/twconf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const literalJSON = `{
  "mode": "jit",
  "contentPaths": ["./app/templates/**/*.html"],
  "plugins": ["typography", "daisyui"],
  "pluginOptions": { "daisyui": { "themes": ["dark","light"], "styled": true } },
  "darkModeStrategy": "class"
}`

// newTestApp writes files under a temporary project root and
// builds an App over real services.
func newTestApp(t *testing.T, files map[string]string) (*App, *bytes.Buffer, *config.StructuredConfig) {
	t.Helper()

	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}

	cfg := config.DefaultConfig()
	cfg.App.ProjectRoot = root
	cfg.App.BuildConfigPath = filepath.Join(root, "twconf.json")
	cfg.App.Version = "1.2.3"
	cfg.Workers.WatchInterval = 20 * time.Millisecond

	services, err := service.NewServices(*cfg, logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	a, err := NewApp(cfg, services, models.NewAppBuildInfo("v0.3.0", "2026-10-01", "abc123"), &out, logger.Nop())
	require.NoError(t, err)

	return a, &out, cfg
}

// ─────────────────────────────────────────────
// NewApp / Run
// ─────────────────────────────────────────────

func TestNewApp_NilServices(t *testing.T) {
	a, err := NewApp(config.DefaultConfig(), nil, models.AppBuildInfo{}, &bytes.Buffer{}, logger.Nop())

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNilServices)
}

func TestRun_UnknownCommand(t *testing.T) {
	a, _, _ := newTestApp(t, nil)

	err := a.Run(context.Background(), "build", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.True(t, IsUsageError(err))
}

func TestRun_TooManyArgs(t *testing.T) {
	a, _, _ := newTestApp(t, nil)

	assert.ErrorIs(t, a.Run(context.Background(), CommandValidate, []string{"a.json", "b.json"}), ErrTooManyArgs)
	assert.ErrorIs(t, a.Run(context.Background(), CommandPlugins, []string{"extra"}), ErrTooManyArgs)
	assert.ErrorIs(t, a.Run(context.Background(), CommandServe, []string{"extra"}), ErrTooManyArgs)
	assert.ErrorIs(t, a.Run(context.Background(), CommandVersion, []string{"extra"}), ErrTooManyArgs)

	err := a.Run(context.Background(), CommandPrint, []string{"a.json", "b.json"})
	assert.True(t, IsUsageError(err))
}

func TestIsUsageError_CommandFailures(t *testing.T) {
	assert.False(t, IsUsageError(nil))
	assert.False(t, IsUsageError(os.ErrNotExist))
	assert.False(t, IsUsageError(&buildconfig.ValidationError{Field: "mode", Err: buildconfig.ErrUnknownMode}))
}

func TestCommands_Sorted(t *testing.T) {
	assert.Equal(t, []string{"content", "plugins", "print", "remote", "serve", "validate", "version", "watch"}, Commands())
}

// ─────────────────────────────────────────────
// validate
// ─────────────────────────────────────────────

func TestValidate_DefaultPath(t *testing.T) {
	a, out, _ := newTestApp(t, map[string]string{"twconf.json": literalJSON})

	require.NoError(t, a.Run(context.Background(), CommandValidate, nil))

	assert.Contains(t, out.String(), "build configuration is valid")
	assert.Contains(t, out.String(), "./app/templates/**/*.html")
	assert.Contains(t, out.String(), "@tailwindcss/typography")
	assert.Contains(t, out.String(), "daisyui")
}

func TestValidate_ExplicitYAMLFile(t *testing.T) {
	a, out, cfg := newTestApp(t, map[string]string{
		"site/twconf.yaml": "mode: aot\ncontentPaths: []\nplugins: [forms]\n",
	})

	require.NoError(t, a.Run(context.Background(), CommandValidate, []string{filepath.Join(cfg.App.ProjectRoot, "site", "twconf.yaml")}))

	assert.Contains(t, out.String(), "aot")
	assert.Contains(t, out.String(), "media")
	assert.Contains(t, out.String(), "0 pattern(s)")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantField string
	}{
		{
			name:      "bad dark mode",
			body:      `{"darkModeStrategy":"auto"}`,
			wantErr:   buildconfig.ErrConfigValidation,
			wantField: "darkModeStrategy",
		},
		{
			name:      "unknown plugin",
			body:      `{"plugins":["typography","no-such-plugin"]}`,
			wantErr:   buildconfig.ErrPluginResolution,
			wantField: "plugins[1]",
		},
		{
			name:    "malformed",
			body:    `{"mode":`,
			wantErr: buildconfig.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, _ := newTestApp(t, map[string]string{"twconf.json": tt.body})

			err := a.Run(context.Background(), CommandValidate, nil)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantField, buildconfig.FieldOf(err))
			assert.Empty(t, out.String())
		})
	}
}

func TestValidate_MissingFile(t *testing.T) {
	a, _, _ := newTestApp(t, nil)

	err := a.Run(context.Background(), CommandValidate, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ─────────────────────────────────────────────
// print
// ─────────────────────────────────────────────

func TestPrint_ConvertsFormat(t *testing.T) {
	for _, format := range buildconfig.Formats {
		t.Run(format.String(), func(t *testing.T) {
			a, out, cfg := newTestApp(t, map[string]string{"twconf.json": literalJSON})
			cfg.App.OutputFormat = format.String()

			require.NoError(t, a.Run(context.Background(), CommandPrint, nil))

			printed, err := buildconfig.Decode(out.Bytes(), format)
			require.NoError(t, err)
			original, err := buildconfig.Decode([]byte(literalJSON), buildconfig.FormatJSON)
			require.NoError(t, err)
			assert.Equal(t, original, printed)
		})
	}
}

func TestPrint_KeepsInputFormatByDefault(t *testing.T) {
	a, out, _ := newTestApp(t, map[string]string{"twconf.json": `{"contentPaths":[]}`})

	require.NoError(t, a.Run(context.Background(), CommandPrint, nil))

	printed, err := buildconfig.Decode(out.Bytes(), buildconfig.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, models.ModeJIT, printed.Mode)
	assert.Equal(t, models.DarkModeMedia, printed.DarkModeStrategy)
	assert.Empty(t, printed.ContentPaths)
}

func TestPrint_UnsupportedFormat(t *testing.T) {
	a, _, cfg := newTestApp(t, map[string]string{"twconf.json": literalJSON})
	cfg.App.OutputFormat = "xml"

	err := a.Run(context.Background(), CommandPrint, nil)
	assert.ErrorIs(t, err, buildconfig.ErrUnsupportedFormat)
}

// ─────────────────────────────────────────────
// content
// ─────────────────────────────────────────────

func TestContent_ListsMatchedFiles(t *testing.T) {
	a, out, _ := newTestApp(t, map[string]string{
		"twconf.json":                  literalJSON,
		"app/templates/index.html":     "<div class=\"p-4\"></div>",
		"app/templates/user/list.html": "<ul></ul>",
		"app/templates/style.css":      "",
	})

	require.NoError(t, a.Run(context.Background(), CommandContent, nil))

	assert.Contains(t, out.String(), "app/templates/index.html")
	assert.Contains(t, out.String(), "app/templates/user/list.html")
	assert.NotContains(t, out.String(), "style.css")
	assert.Contains(t, out.String(), "2 file(s) from 1 pattern(s)")
}

func TestContent_NoPatterns(t *testing.T) {
	a, out, _ := newTestApp(t, map[string]string{"twconf.json": `{"contentPaths":[]}`})

	require.NoError(t, a.Run(context.Background(), CommandContent, nil))
	assert.Contains(t, out.String(), "no content files matched")
}

// ─────────────────────────────────────────────
// plugins / version
// ─────────────────────────────────────────────

func TestPlugins_ListsCatalogue(t *testing.T) {
	a, out, _ := newTestApp(t, nil)

	require.NoError(t, a.Run(context.Background(), CommandPlugins, nil))

	for _, name := range []string{"typography", "forms", "aspect-ratio", "container-queries", "line-clamp", "daisyui"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestVersion(t *testing.T) {
	a, out, _ := newTestApp(t, nil)

	require.NoError(t, a.Run(context.Background(), CommandVersion, nil))

	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "v0.3.0")
	assert.Contains(t, out.String(), "abc123")
}

// ─────────────────────────────────────────────
// watch
// ─────────────────────────────────────────────

func TestWatch_RendersUntilCancelled(t *testing.T) {
	a, out, _ := newTestApp(t, map[string]string{"twconf.json": literalJSON})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx, CommandWatch, nil))
	assert.Contains(t, out.String(), "build configuration is valid")
}

func TestWatch_RendersLoadErrors(t *testing.T) {
	a, out, _ := newTestApp(t, map[string]string{"twconf.json": `{"darkModeStrategy":"auto"}`})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx, CommandWatch, nil))
	assert.Contains(t, out.String(), "build configuration rejected")
	assert.Contains(t, out.String(), "darkModeStrategy")
}

// ─────────────────────────────────────────────
// remote
// ─────────────────────────────────────────────

func TestRemote(t *testing.T) {
	a, out, cfg := newTestApp(t, map[string]string{
		"twconf.json":   literalJSON,
		"invalid.json":  `{"mode":"turbo"}`,
		"twconf.config": literalJSON,
	})

	srv := httptest.NewServer(handlerhttp.NewHandler(a.services, cfg.Server, logger.Nop()).Init())
	defer srv.Close()
	cfg.Adapter.HTTPAddress = srv.URL

	require.NoError(t, a.Run(context.Background(), CommandRemote, nil))
	assert.Contains(t, out.String(), "build configuration is valid")
	assert.Contains(t, out.String(), srv.URL)

	err := a.Run(context.Background(), CommandRemote, []string{filepath.Join(cfg.App.ProjectRoot, "invalid.json")})
	require.ErrorIs(t, err, buildconfig.ErrConfigValidation)
	assert.Equal(t, "mode", buildconfig.FieldOf(err))

	err = a.Run(context.Background(), CommandRemote, []string{filepath.Join(cfg.App.ProjectRoot, "twconf.config")})
	assert.ErrorIs(t, err, buildconfig.ErrConfigParse)
}

func TestRemote_NoAddress(t *testing.T) {
	a, _, _ := newTestApp(t, map[string]string{"twconf.json": literalJSON})

	err := a.Run(context.Background(), CommandRemote, nil)
	assert.ErrorIs(t, err, adapter.ErrEmptyAddress)
}

func TestRemote_PluginsAndVersion(t *testing.T) {
	a, out, cfg := newTestApp(t, nil)

	serverCfg := *cfg
	serverCfg.App.Version = "9.9.9"
	serverServices, err := service.NewServices(serverCfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(serverServices, serverCfg.Server, logger.Nop()).Init())
	defer srv.Close()
	cfg.Adapter.HTTPAddress = srv.URL

	require.NoError(t, a.Run(context.Background(), CommandPlugins, nil))
	assert.Contains(t, out.String(), "@tailwindcss/typography")
	assert.Contains(t, out.String(), "6 plugin(s)")

	out.Reset()
	require.NoError(t, a.Run(context.Background(), CommandVersion, nil))
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "9.9.9")
}

func TestVersion_UnreachableServer(t *testing.T) {
	a, _, cfg := newTestApp(t, nil)

	srv := httptest.NewServer(nil)
	cfg.Adapter.HTTPAddress = srv.URL
	srv.Close()

	assert.Error(t, a.Run(context.Background(), CommandVersion, nil))
	assert.Error(t, a.Run(context.Background(), CommandPlugins, nil))
}
