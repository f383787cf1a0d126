// Package pages holds the page bodies rendered inside the layout.
package pages

import "github.com/pecoelho01/portfolio/internal/adapter/driving/web/templates/components"

// View is the state a page body renders. Toggle is nil until the theme
// toggle action is bound.
type View struct {
	Account string
	Toggle  *components.ThemeToggle
	Grid    *components.Grid
}
