package web

import (
	"maps"

	"github.com/a-h/templ"

	"github.com/pecoelho01/portfolio/internal/adapter/driving/web/templates"
	"github.com/pecoelho01/portfolio/internal/adapter/driving/web/templates/components"
	"github.com/pecoelho01/portfolio/internal/adapter/driving/web/templates/pages"
	"github.com/pecoelho01/portfolio/internal/application"
)

// PageView renders the complete HTML document for p.
func PageView(p *Page, account string) templ.Component {
	doc := templates.Document{
		Title:        pageTitle(p.kind, account),
		Theme:        p.rootTheme,
		ColorScheme:  p.colorScheme,
		BodyClasses:  p.BodyClasses(),
		InlineStyles: p.inlineStyles,
	}
	view := pages.View{
		Account: account,
		Toggle:  p.themeToggle(),
		Grid:    p.grid(),
	}

	if p.kind == PageProjects {
		return templates.Layout(doc, pages.Projects(view))
	}
	return templates.Layout(doc, pages.Landing(view))
}

// themeToggle returns the toggle form, or nil while the action is unbound.
func (p *Page) themeToggle() *components.ThemeToggle {
	if p.toggle == nil || p.toggle.action == "" {
		return nil
	}
	return &components.ThemeToggle{
		Action:    p.toggle.action,
		Label:     p.toggle.label,
		CSRFToken: p.csrfToken,
		Theme:     p.rootTheme,
		ReturnTo:  p.returnTo,
	}
}

func (p *Page) grid() *components.Grid {
	c, ok := p.containers[application.ProjectsContainerID]
	if !ok {
		return nil
	}

	g := &components.Grid{ID: application.ProjectsContainerID, Attrs: maps.Clone(c.attrs)}
	if c.replaced {
		content := c.content
		g.Content = &content
	}
	return g
}

func pageTitle(kind PageKind, account string) string {
	if kind == PageProjects {
		return "Projetos | " + account
	}
	return "Portfólio | " + account
}
