package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/bandsite/internal/metrics"
	"github.com/desertthunder/bandsite/internal/services"
	"github.com/go-chi/chi/v5/middleware"
)

// RoutesOpts contains the dependencies for [NewRoutes].
type RoutesOpts struct {
	Source  services.ShowSource
	Metrics *metrics.Metrics // Optional; /metrics is only mounted when set
	Logger  *log.Logger
}

// NewRoutes assembles the site's router with its middleware stack.
func NewRoutes(opts RoutesOpts) *BasicRouter {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	r := NewBasicRouter()
	r.Use(
		middleware.RequestID,
		Logging(opts.Logger),
		Instrument(opts.Metrics),
		middleware.Recoverer,
	)

	r.Handler(NewTourHandler(opts.Source, opts.Logger))
	r.Handler(HealthHandler{Logger: opts.Logger})

	if opts.Metrics != nil {
		r.Handle(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	return r
}
