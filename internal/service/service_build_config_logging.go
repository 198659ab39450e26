package service

import (
	"context"
	"time"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/models"
	"github.com/rs/zerolog"
)

type BuildConfigLoggingService struct {
	inner BuildConfigService

	logger *logger.Logger
}

func NewBuildConfigLoggingService(logger *logger.Logger) BuildConfigServiceWrapper {
	return &BuildConfigLoggingService{logger: logger}
}

func (l *BuildConfigLoggingService) Load(ctx context.Context, path string) (models.ValidationReport, error) {
	start := time.Now()
	report, err := l.inner.Load(ctx, path)
	l.log(err, "load", start).Str("path", path).Str("fingerprint", report.Fingerprint).Msg("build configuration load finished")

	return report, err
}

func (l *BuildConfigLoggingService) Validate(ctx context.Context, data []byte, format buildconfig.Format) (models.ValidationReport, error) {
	start := time.Now()
	report, err := l.inner.Validate(ctx, data, format)
	l.log(err, "validate", start).
		Str("format", format.String()).
		Int("bytes", len(data)).
		Str("fingerprint", report.Fingerprint).
		Msg("build configuration validation finished")

	return report, err
}

func (l *BuildConfigLoggingService) Plugins(ctx context.Context) []models.Plugin {
	return l.inner.Plugins(ctx)
}

func (l *BuildConfigLoggingService) Wrap(wrapped BuildConfigService) BuildConfigService {
	l.inner = wrapped
	return l
}

func (l *BuildConfigLoggingService) log(err error, op string, start time.Time) *zerolog.Event {
	event := l.logger.Info()
	if err != nil {
		event = l.logger.Warn().Err(err).Str("field", buildconfig.FieldOf(err))
	}

	return event.Str("op", op).Dur("duration", time.Since(start))
}
