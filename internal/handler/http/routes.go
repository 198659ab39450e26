package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	validatePath = "/api/config/validate"
	pluginsPath  = "/api/plugins"
	versionPath  = "/api/version/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.With(h.withBodyLimit, h.withContentDigest).Post(validatePath, h.validateConfig)
	router.Get(pluginsPath, h.listPlugins)
	router.Get(versionPath, h.validatorVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
