package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/logger"
	"github.com/MKhiriev/twconf/internal/utils"
	"github.com/MKhiriev/twconf/models"
)

const formatQueryParam = "format"

func (h *Handler) validateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	format, err := requestFormat(r)
	if err != nil {
		log.Err(err).Msg("unsupported config format")
		h.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("failed to read request body")
		h.writeError(w, r, errors.Join(ErrReadingBody, err))
		return
	}

	report, err := h.services.BuildConfigService.Validate(ctx, body, format)
	if err != nil {
		log.Err(err).Str("field", buildconfig.FieldOf(err)).Msg("build configuration rejected")
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, report, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write validation report")
	}
}

func (h *Handler) listPlugins(w http.ResponseWriter, r *http.Request) {
	list := h.services.BuildConfigService.Plugins(r.Context())

	response := models.PluginsResponse{
		Plugins: list,
		Length:  len(list),
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write plugin list")
	}
}

// requestFormat takes the format from the "format" query parameter and falls
// back to the Content-Type header.
func requestFormat(r *http.Request) (buildconfig.Format, error) {
	if name := r.URL.Query().Get(formatQueryParam); name != "" {
		return buildconfig.ParseFormat(name)
	}
	return buildconfig.FormatFromContentType(r.Header.Get("Content-Type"))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("failed to write error response")
	}
}
