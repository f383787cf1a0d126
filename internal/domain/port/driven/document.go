package driven

import "github.com/pecoelho01/portfolio/internal/domain/model"

// Document is the page being rendered. Optional parts (body, toggle control,
// containers) report their absence with a false second return value.
type Document interface {
	// Path is the request path of the page; "/" is the landing page.
	Path() string

	// RootTheme returns the theme attribute on the document root, "" if unset.
	RootTheme() string
	SetRootTheme(theme string)

	// SetColorScheme sets the rendering engine's native color-scheme hint.
	SetColorScheme(scheme string)

	Body() (ClassList, bool)
	ToggleControl() (ToggleControl, bool)
	Container(id string) (Container, bool)
}

// ClassList is the set of presentational classes of an element.
type ClassList interface {
	SetClass(name string, enabled bool)
}

// ToggleControl is the user control that switches the theme.
type ToggleControl interface {
	SetLabel(label string)

	// OnActivate binds the action invoked when the user activates the control.
	OnActivate(action string)
}

// Container is an element whose content is owned by a single renderer.
type Container interface {
	Attr(name string) string

	// Replace discards the current content and installs content.
	Replace(content model.FeedContent)
}
