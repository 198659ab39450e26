package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/config"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/utils"
	"github.com/MKhiriev/twconf/models"
)

const (
	validatePath = "/api/config/validate"
	pluginsPath  = "/api/plugins"
	versionPath  = "/api/version/"

	contentDigestHeader = "X-Content-Digest"
)

type httpValidatorAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPValidatorAdapter constructs an HTTP implementation of
// [ValidatorAdapter]. cfg.HTTPAddress may omit the scheme, in which case
// http is assumed.
func NewHTTPValidatorAdapter(cfg config.Adapter, logger *logger.Logger) (ValidatorAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpValidatorAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Validate implements [ValidatorAdapter]. The document is sent as is with
// its media type and BLAKE2b digest.
func (h *httpValidatorAdapter) Validate(ctx context.Context, data []byte, format buildconfig.Format) (models.ValidationReport, error) {
	var report models.ValidationReport

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", format.ContentType()).
		SetHeader(contentDigestHeader, buildconfig.Digest(data)).
		SetBody(data).
		SetResult(&report).
		Post(validatePath)
	if err != nil {
		return models.ValidationReport{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidationReport{}, err
	}

	h.logger.Debug().
		Str("fingerprint", report.Fingerprint).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("remote validation succeeded")

	return report, nil
}

// Plugins implements [ValidatorAdapter].
func (h *httpValidatorAdapter) Plugins(ctx context.Context) ([]models.Plugin, error) {
	var list models.PluginsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&list).
		Get(pluginsPath)
	if err != nil {
		return nil, fmt.Errorf("plugins request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Plugins, nil
}

// Version implements [ValidatorAdapter].
func (h *httpValidatorAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
