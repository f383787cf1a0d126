package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pecoelho01/portfolio/internal/domain/model"
	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

// ThemeStorageKey is the preference key holding the persisted theme.
const ThemeStorageKey = "portfolio-theme"

// ToggleAction is the action bound to the document's toggle control.
const ToggleAction = "/theme/toggle"

// ThemeManager resolves, applies, and persists the display theme for one
// visitor. It is created per page session and holds no state of its own.
type ThemeManager struct {
	store  driven.PreferenceStore
	scope  string
	signal driven.ColorSchemeSignal
	logger *slog.Logger
}

// NewThemeManager creates a ThemeManager. store may be nil when no persistent
// store is available; signal may be nil when the system preference is unknown.
func NewThemeManager(store driven.PreferenceStore, scope string, signal driven.ColorSchemeSignal, logger *slog.Logger) *ThemeManager {
	return &ThemeManager{
		store:  store,
		scope:  scope,
		signal: signal,
		logger: logger,
	}
}

// Init applies the initial theme to doc and binds the toggle action to the
// document's toggle control when it has one.
func (m *ThemeManager) Init(ctx context.Context, doc driven.Document) model.Theme {
	theme := m.ResolveInitialTheme(ctx)
	m.ApplyTheme(doc, theme)

	if toggle, ok := doc.ToggleControl(); ok {
		toggle.OnActivate(ToggleAction)
	}

	return theme
}

// ResolveInitialTheme returns the persisted theme when it is exactly "light"
// or "dark". Otherwise it follows the system signal.
func (m *ThemeManager) ResolveInitialTheme(ctx context.Context) model.Theme {
	stored, err := m.readPreference(ctx)
	if err == nil {
		if theme, ok := model.ParseTheme(stored); ok {
			return theme
		}
	} else {
		m.logger.Debug("theme preference unreadable, using system signal", "error", err)
	}

	if m.signal != nil && m.signal.PrefersDark() {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// ApplyTheme reflects theme on the document root, body, and toggle control.
func (m *ThemeManager) ApplyTheme(doc driven.Document, theme model.Theme) {
	doc.SetRootTheme(string(theme))
	doc.SetColorScheme(string(theme))

	if body, ok := doc.Body(); ok {
		body.SetClass(theme.BodyClass(), true)
		body.SetClass(theme.Toggle().BodyClass(), false)
	}

	if toggle, ok := doc.ToggleControl(); ok {
		toggle.SetLabel(theme.Toggle().Label())
	}
}

// ToggleTheme switches the document to the opposite of its applied theme,
// persists the choice, and returns the new theme.
func (m *ThemeManager) ToggleTheme(ctx context.Context, doc driven.Document) model.Theme {
	current, ok := model.ParseTheme(doc.RootTheme())
	if !ok {
		current = model.ThemeLight
	}
	next := current.Toggle()

	// A failed write must not block applying the new theme.
	if err := m.persist(ctx, next); err != nil {
		m.logger.Debug("theme preference not persisted", "theme", next, "error", err)
	}

	m.ApplyTheme(doc, next)
	return next
}

func (m *ThemeManager) readPreference(ctx context.Context) (string, error) {
	if m.store == nil {
		return "", model.ErrStoreUnavailable
	}
	v, err := m.store.Get(ctx, m.scope, ThemeStorageKey)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", ThemeStorageKey, err)
	}
	return v, nil
}

func (m *ThemeManager) persist(ctx context.Context, theme model.Theme) error {
	if m.store == nil {
		return model.ErrStoreUnavailable
	}
	if err := m.store.Set(ctx, m.scope, ThemeStorageKey, string(theme)); err != nil {
		return fmt.Errorf("writing %s: %w", ThemeStorageKey, err)
	}
	return nil
}
