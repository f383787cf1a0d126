package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Landing)
	mux.HandleFunc("GET /index.html", h.Landing)
	mux.HandleFunc("GET /projects", h.Projects)
	mux.HandleFunc("POST /theme/toggle", h.ToggleTheme)
}
