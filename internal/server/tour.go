package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/bandsite/internal/services"
	"github.com/go-chi/chi/v5/middleware"
)

// TourHandler serves the tour feed envelope.
//
// Implements the Handler interface for registration with a Router.
type TourHandler struct {
	source services.ShowSource
	logger *log.Logger
}

// NewTourHandler creates a new [TourHandler] reading from source.
func NewTourHandler(source services.ShowSource, logger *log.Logger) *TourHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &TourHandler{source: source, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *TourHandler) Routes() []string {
	return []string{"/api/tour"}
}

// ServeHTTP fetches the sheet and writes the envelope: 200 with shows, or 500 with an empty list and error text.
func (h *TourHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := http.StatusOK
	list, err := h.source.Load(r.Context())
	if err != nil {
		h.logger.Error("failed to load tour data", "error", err, "request_id", middleware.GetReqID(r.Context()))
		status = http.StatusInternalServerError
	}

	w.Header().Set("Cache-Control", "no-store")
	if err := writeJSON(w, status, list); err != nil {
		h.logger.Debug("failed to write tour response", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
}

// HealthHandler answers liveness probes without touching the sheet.
type HealthHandler struct {
	Logger *log.Logger // Optional, defaults to [log.Default]
}

// Routes returns the HTTP routes this handler serves.
func (h HealthHandler) Routes() []string {
	return []string{"/healthz"}
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		logger := h.Logger
		if logger == nil {
			logger = log.Default()
		}
		logger.Debug("failed to write health response", "error", err)
	}
}

// writeJSON sends v with status. Errors come from the client connection once headers are out.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
