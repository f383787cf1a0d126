// Package httphandler implements the JSON API driving adapter and the HTTP
// middleware shared with the web adapter.
package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pecoelho01/portfolio/internal/application"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	feed   *application.FeedService
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(feed *application.FeedService, logger *slog.Logger) *Handler {
	return &Handler{
		feed:   feed,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterAPIRoutes registers the REST API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/projects", h.ListProjects)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ListProjects returns the account's non-fork projects with their briefs.
// The optional limit query parameter caps the count; it defaults to the
// configured limit for non-landing pages.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	limit := h.feed.Limits().Other
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	projects, err := h.feed.Projects(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		writeError(w, http.StatusBadGateway, application.StatusMessage(err))
		return
	}

	now := h.now()
	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p, now))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
