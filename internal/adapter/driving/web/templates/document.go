// Package templates holds the document layout shared by every HTML page.
package templates

import (
	"strings"

	"github.com/a-h/templ"
)

// Document is the root-level state the layout renders around a page.
type Document struct {
	Title        string
	Theme        string
	ColorScheme  string
	BodyClasses  []string
	InlineStyles string // replaces the stylesheet link when set
}

func (d Document) rootAttributes() templ.Attributes {
	attrs := templ.Attributes{}
	if d.Theme != "" {
		attrs["data-theme"] = d.Theme
	}
	if d.ColorScheme != "" {
		attrs["style"] = "color-scheme: " + d.ColorScheme
	}
	return attrs
}

func (d Document) bodyAttributes() templ.Attributes {
	attrs := templ.Attributes{}
	if len(d.BodyClasses) > 0 {
		attrs["class"] = strings.Join(d.BodyClasses, " ")
	}
	return attrs
}

func inlineStyle(css string) templ.Component {
	return templ.Raw("<style>\n" + css + "</style>")
}
