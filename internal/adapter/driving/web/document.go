package web

import (
	"slices"

	"github.com/pecoelho01/portfolio/internal/application"
	"github.com/pecoelho01/portfolio/internal/domain/model"
	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

// PageKind selects which page layout a Page renders.
type PageKind int

const (
	// PageLanding is the home page with a short projects section.
	PageLanding PageKind = iota
	// PageProjects lists every project up to the configured limit.
	PageProjects
)

// Page is the server-side document for one response. The application layer
// mutates it through the driven.Document port; the components render it.
type Page struct {
	kind        PageKind
	path        string
	returnTo    string
	rootTheme   string
	colorScheme string
	body        *classList
	toggle      *toggleControl
	containers  map[string]*container

	csrfToken    string
	inlineStyles string // replaces the stylesheet link when set
}

var _ driven.Document = (*Page)(nil)

// NewPage builds the document for kind. limitAttr is copied onto the projects
// container's data-limit attribute when non-empty. returnTo is the local URL
// the theme toggle form posts back to.
func NewPage(kind PageKind, limitAttr, returnTo string) *Page {
	path := "/"
	if kind == PageProjects {
		path = "/projects"
	}
	if returnTo == "" {
		returnTo = path
	}

	grid := &container{attrs: map[string]string{}}
	if limitAttr != "" {
		grid.attrs[application.LimitAttr] = limitAttr
	}

	return &Page{
		kind:       kind,
		path:       path,
		returnTo:   returnTo,
		body:       &classList{},
		toggle:     &toggleControl{},
		containers: map[string]*container{application.ProjectsContainerID: grid},
	}
}

func (p *Page) Path() string { return p.path }

func (p *Page) RootTheme() string { return p.rootTheme }

func (p *Page) SetRootTheme(theme string) { p.rootTheme = theme }

func (p *Page) SetColorScheme(scheme string) { p.colorScheme = scheme }

func (p *Page) Body() (driven.ClassList, bool) {
	if p.body == nil {
		return nil, false
	}
	return p.body, true
}

func (p *Page) ToggleControl() (driven.ToggleControl, bool) {
	if p.toggle == nil {
		return nil, false
	}
	return p.toggle, true
}

func (p *Page) Container(id string) (driven.Container, bool) {
	c, ok := p.containers[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// Projects returns the content installed in the projects container, if any.
func (p *Page) Projects() (model.FeedContent, bool) {
	c, ok := p.containers[application.ProjectsContainerID]
	if !ok || !c.replaced {
		return model.FeedContent{}, false
	}
	return c.content, true
}

// BodyClasses returns the body's classes in the order they were added.
func (p *Page) BodyClasses() []string {
	if p.body == nil {
		return nil
	}
	return slices.Clone(p.body.names)
}

// ToggleLabel returns the label currently shown on the theme toggle.
func (p *Page) ToggleLabel() string {
	if p.toggle == nil {
		return ""
	}
	return p.toggle.label
}

// classList is an ordered set of class names.
type classList struct {
	names []string
}

func (c *classList) SetClass(name string, enabled bool) {
	i := slices.Index(c.names, name)
	switch {
	case enabled && i < 0:
		c.names = append(c.names, name)
	case !enabled && i >= 0:
		c.names = slices.Delete(c.names, i, i+1)
	}
}

type toggleControl struct {
	label  string
	action string
}

func (t *toggleControl) SetLabel(label string) { t.label = label }

func (t *toggleControl) OnActivate(action string) { t.action = action }

type container struct {
	attrs    map[string]string
	content  model.FeedContent
	replaced bool
}

func (c *container) Attr(name string) string { return c.attrs[name] }

func (c *container) Replace(content model.FeedContent) {
	c.content = content
	c.replaced = true
}
