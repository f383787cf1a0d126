// Package components holds the templ components the portfolio pages are
// assembled from.
package components

import (
	"fmt"
	"time"

	"github.com/a-h/templ"

	"github.com/pecoelho01/portfolio/internal/domain/model"
)

// Form fields posted by the theme toggle.
const (
	CSRFField   = "csrf_token"
	ThemeField  = "theme"
	ReturnField = "return"
)

const fallbackLabel = "Ver repositórios no GitHub"

// ThemeToggle is the bound theme toggle form. Theme is the theme the page
// shows and ReturnTo the local URL to re-render after the toggle.
type ThemeToggle struct {
	Action    string
	Label     string
	CSRFToken string
	Theme     string
	ReturnTo  string
}

// Grid is the projects container. Content is nil until the feed has replaced
// the container's children.
type Grid struct {
	ID      string
	Attrs   map[string]string
	Content *model.FeedContent
}

func (g *Grid) attributes() templ.Attributes {
	attrs := make(templ.Attributes, len(g.Attrs))
	for name, value := range g.Attrs {
		attrs[name] = value
	}
	return attrs
}

func cardAttributes(card model.ProjectCard) templ.Attributes {
	return templ.Attributes{
		"style": fmt.Sprintf("animation-delay: %dms", card.AnimationDelay.Milliseconds()),
	}
}

func datetimeAttributes(t time.Time) templ.Attributes {
	if t.IsZero() {
		return templ.Attributes{}
	}
	return templ.Attributes{"datetime": t.UTC().Format(time.RFC3339)}
}
