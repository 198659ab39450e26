package http

import (
	"net/http"

	"github.com/MKhiriev/twconf/internal/logger"
)

// validatorVersion answers with the bare version string of the running
// validation service, as the remote adapter expects it.
func (h *Handler) validatorVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write validator version")
	}
}
