// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/config"
	handler "github.com/MKhiriev/twconf/internal/handler/http"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/plugins"
	"github.com/MKhiriev/twconf/internal/service"
	"github.com/MKhiriev/twconf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const literalConfig = `{
  "mode": "jit",
  "contentPaths": ["./app/templates/**/*.html"],
  "plugins": ["typography", "daisyui"],
  "pluginOptions": { "daisyui": { "themes": ["dark","light"], "styled": true } },
  "darkModeStrategy": "class"
}`

// newTestAdapter creates an httpValidatorAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) ValidatorAdapter {
	t.Helper()

	a, err := NewHTTPValidatorAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// newTwconfServer starts the real HTTP stack over the built-in catalogue.
func newTwconfServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry := plugins.DefaultRegistry()
	svc, err := service.NewBuildConfigService(buildconfig.NewLoader(registry, registry, logger.Nop()), registry, 8, logger.Nop())
	require.NoError(t, err)
	appInfo, err := service.NewAppInfoService(config.App{Version: "1.4.0"}, logger.Nop())
	require.NoError(t, err)

	h := handler.NewHandler(
		&service.Services{BuildConfigService: svc, AppInfoService: appInfo},
		config.Server{MaxBodyBytes: config.DefaultMaxBodyBytes},
		logger.Nop(),
	)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

// ── NewHTTPValidatorAdapter ─────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://validator.internal/ ", want: "https://validator.internal"},
		{raw: "http://127.0.0.1:9000", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPValidatorAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPValidatorAdapter(config.Adapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Validate against the real server ────────────────────────────────────────

func TestValidate_Literal(t *testing.T) {
	a := newTestAdapter(t, newTwconfServer(t).URL)

	report, err := a.Validate(context.Background(), []byte(literalConfig), buildconfig.FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, []string{"./app/templates/**/*.html"}, report.Config.ContentPaths)
	daisy, ok, err := report.Config.PluginOptions.DaisyUI()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"dark", "light"}, daisy.Themes.Names)
	assert.Equal(t, models.DarkModeClass, report.Config.DarkModeStrategy)
}

func TestValidate_MatchesLocalFingerprint(t *testing.T) {
	a := newTestAdapter(t, newTwconfServer(t).URL)
	registry := plugins.DefaultRegistry()
	local, err := buildconfig.NewLoader(registry, registry, logger.Nop()).
		Parse(context.Background(), []byte(literalConfig), buildconfig.FormatJSON)
	require.NoError(t, err)

	remote, err := a.Validate(context.Background(), []byte(literalConfig), buildconfig.FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, local.Fingerprint, remote.Fingerprint)
}

func TestValidate_ErrorKindsSurviveTheRoundTrip(t *testing.T) {
	a := newTestAdapter(t, newTwconfServer(t).URL)

	tests := []struct {
		name      string
		doc       string
		format    buildconfig.Format
		wantKind  error
		wantField string
	}{
		{name: "parse", doc: "mode: [", format: buildconfig.FormatYAML, wantKind: buildconfig.ErrConfigParse},
		{name: "validation", doc: `{"darkModeStrategy": "auto"}`, format: buildconfig.FormatJSON, wantKind: buildconfig.ErrConfigValidation, wantField: "darkModeStrategy"},
		{name: "plugin resolution", doc: "plugins = [\"nope\"]\n", format: buildconfig.FormatTOML, wantKind: buildconfig.ErrPluginResolution, wantField: "plugins[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Validate(context.Background(), []byte(tt.doc), tt.format)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantField, buildconfig.FieldOf(err))

			var remote *RemoteError
			assert.True(t, errors.As(err, &remote))
		})
	}
}

func TestValidate_SendsFormatAndDigest(t *testing.T) {
	const doc = "contentPaths = []\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, validatePath, r.URL.Path)
		assert.Equal(t, "application/toml", r.Header.Get("Content-Type"))
		assert.Equal(t, buildconfig.Digest([]byte(doc)), r.Header.Get(contentDigestHeader))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, doc, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fingerprint":"abc","plugins":[]}`))
	}))
	defer srv.Close()

	report, err := newTestAdapter(t, srv.URL).Validate(context.Background(), []byte(doc), buildconfig.FormatTOML)

	require.NoError(t, err)
	assert.Equal(t, "abc", report.Fingerprint)
}

// ── Plugins / Version ───────────────────────────────────────────────────────

func TestPlugins(t *testing.T) {
	list, err := newTestAdapter(t, newTwconfServer(t).URL).Plugins(context.Background())

	require.NoError(t, err)
	assert.Equal(t, plugins.DefaultRegistry().Plugins(), list)
}

func TestVersion(t *testing.T) {
	version, err := newTestAdapter(t, newTwconfServer(t).URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_StatusSentinels(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{status: http.StatusBadRequest, body: `{"kind":"request","message":"content digest mismatch"}`, want: ErrBadRequest},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusRequestEntityTooLarge, body: `{"kind":"request","message":"request body is too large"}`, want: ErrPayloadTooLarge},
		{status: http.StatusInternalServerError, body: `{"kind":"internal","message":"internal server error"}`, want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(context.Background())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Plugins(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestValidate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, newTwconfServer(t).URL).Validate(ctx, []byte("{}"), buildconfig.FormatJSON)

	assert.ErrorIs(t, err, context.Canceled)
}
