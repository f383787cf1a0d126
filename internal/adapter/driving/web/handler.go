// Package web implements the HTML driving adapter using templ components.
package web

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pecoelho01/portfolio/internal/adapter/driving/web/templates/components"
	"github.com/pecoelho01/portfolio/internal/application"
	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

const (
	themeFormField  = components.ThemeField
	returnFormField = components.ReturnField
	limitQueryParam = "limit"
)

// Handler is the web driving adapter that serves the portfolio pages.
type Handler struct {
	feed   *application.FeedService
	prefs  driven.PreferenceStore
	logger *slog.Logger
}

// NewHandler creates a Handler. prefs may be nil, in which case theme choices
// are applied but not remembered.
func NewHandler(feed *application.FeedService, prefs driven.PreferenceStore, logger *slog.Logger) *Handler {
	return &Handler{
		feed:   feed,
		prefs:  prefs,
		logger: logger,
	}
}

// Landing renders the home page with the most recently updated projects.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, NewPage(PageLanding, "", r.URL.RequestURI()))
}

// Projects renders the full projects page. The optional limit query parameter
// becomes the container's limit attribute.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	limit := r.URL.Query().Get(limitQueryParam)
	h.servePage(w, r, NewPage(PageProjects, limit, r.URL.RequestURI()))
}

// ToggleTheme handles the toggle form. The page it was posted from is rebuilt
// with the theme it showed, toggled, and rendered in place so the new theme
// applies even when it cannot be stored.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	advertiseColorSchemeHint(w)
	page := pageFromReturn(r.PostFormValue(returnFormField))
	page.csrfToken = csrfToken(w, r)
	page.SetRootTheme(r.PostFormValue(themeFormField))
	page.toggle.OnActivate(application.ToggleAction)

	theme := h.themeManager(w, r).ToggleTheme(r.Context(), page)
	h.logger.Debug("theme toggled", "theme", theme, "page", page.Path())

	h.feed.LoadProjects(r.Context(), page)

	h.render(w, r, page)
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, page *Page) {
	advertiseColorSchemeHint(w)
	page.csrfToken = csrfToken(w, r)

	h.themeManager(w, r).Init(r.Context(), page)
	h.feed.LoadProjects(r.Context(), page)

	h.render(w, r, page)
}

func (h *Handler) themeManager(w http.ResponseWriter, r *http.Request) *application.ThemeManager {
	return application.NewThemeManager(h.prefs, visitorID(w, r), colorSchemeSignal(r), h.logger)
}

// render buffers the page so a failed render can still answer with a 500.
// Pages carry the visitor's CSRF token and theme, so no cache may store them.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page *Page) {
	var buf bytes.Buffer
	if err := PageView(page, h.feed.Account()).Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", "path", page.Path(), "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write page", "path", page.Path(), "error", err)
	}
}

// pageFromReturn rebuilds the page named by a toggle form's return field.
// Anything other than a local path falls back to the landing page.
func pageFromReturn(returnTo string) *Page {
	u, err := url.Parse(returnTo)
	if err != nil || u.Scheme != "" || u.Host != "" ||
		!strings.HasPrefix(u.Path, "/") || strings.HasPrefix(returnTo, "//") {
		return NewPage(PageLanding, "", "/")
	}

	if u.Path == "/projects" {
		return NewPage(PageProjects, u.Query().Get(limitQueryParam), u.RequestURI())
	}
	return NewPage(PageLanding, "", u.RequestURI())
}
