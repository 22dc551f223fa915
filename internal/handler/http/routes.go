package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	routeVersion   = "/api/version/"
	routeBuildInfo = "/api/build/"
	routeOptions   = "/api/discovery/options"
	routeToken     = "/api/discovery/token"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get(routeVersion, h.getServerVersion)
	router.Get(routeBuildInfo, h.getBuildInfo)
	router.Get(routeOptions, h.getOptions)
	router.Get(routeToken, h.getTokenInfo)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
