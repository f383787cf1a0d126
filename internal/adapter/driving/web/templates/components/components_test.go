package components_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pecoelho01/portfolio/internal/adapter/driving/web/templates/components"
	"github.com/pecoelho01/portfolio/internal/domain/model"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestSiteHeader_WithoutToggleHasNoForm(t *testing.T) {
	out := render(t, components.SiteHeader("octocat", nil))

	assert.Contains(t, out, `<a class="brand" href="/">octocat</a>`)
	assert.NotContains(t, out, "<form")
}

func TestSiteHeader_ToggleFormCarriesHiddenFields(t *testing.T) {
	out := render(t, components.SiteHeader("octocat", &components.ThemeToggle{
		Action:    "/theme/toggle",
		Label:     "Tema claro",
		CSRFToken: "tok",
		Theme:     "dark",
		ReturnTo:  "/projects?limit=3&x=1",
	}))

	assert.Contains(t, out, `action="/theme/toggle"`)
	assert.Contains(t, out, `name="csrf_token" value="tok"`)
	assert.Contains(t, out, `name="theme" value="dark"`)
	assert.Contains(t, out, `name="return" value="/projects?limit=3&amp;x=1"`)
	assert.Contains(t, out, `aria-label="Tema claro">Tema claro</button>`)
}

func TestFeed_FailedStatusShowsFallbackLink(t *testing.T) {
	out := render(t, components.Feed(model.FeedContent{
		Status:      "HTTP 403",
		FallbackURL: "https://github.com/octocat?tab=repositories",
	}))

	assert.Contains(t, out, `<p class="status">HTTP 403</p>`)
	assert.Contains(t, out, `href="https://github.com/octocat?tab=repositories"`)
	assert.Contains(t, out, "Ver repositórios no GitHub")
}

func TestFeed_EmptyStatusHasNoFallbackLink(t *testing.T) {
	out := render(t, components.Feed(model.FeedContent{Status: "Nenhum projeto público encontrado."}))

	assert.Contains(t, out, "Nenhum projeto público encontrado.")
	assert.NotContains(t, out, "fallback-link")
}

func TestProjectCard_EscapesTextAndRendersOverrideMarkdown(t *testing.T) {
	card := model.ProjectCard{
		Title:       "<api>",
		Description: "REST <b>demo</b>",
		Topics:      []string{"go", "http"},
		Brief: model.ProjectBrief{
			Proposal:           "Painel **interno**",
			ProposalOverridden: true,
			Objective:          "Mostrar <i>dados</i>",
		},
		Language:       "Go",
		UpdatedAt:      time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
		UpdatedLabel:   "05 de mar. de 2024",
		RepoURL:        "https://github.com/octocat/api",
		DemoURL:        "javascript:alert(1)",
		AnimationDelay: 160 * time.Millisecond,
	}

	out := render(t, components.ProjectCard(card))

	assert.Contains(t, out, `style="animation-delay: 160ms"`)
	assert.Contains(t, out, "<h3>&lt;api&gt;</h3>")
	assert.Contains(t, out, "REST &lt;b&gt;demo&lt;/b&gt;")
	assert.Contains(t, out, "<li>go</li><li>http</li>")
	assert.Contains(t, out, "<strong>Proposta:</strong> Painel <strong>interno</strong>")
	assert.Contains(t, out, "<strong>Objetivo:</strong> Mostrar &lt;i&gt;dados&lt;/i&gt;")
	assert.Contains(t, out, `<time datetime="2024-03-05T12:00:00Z">05 de mar. de 2024</time>`)
	assert.Contains(t, out, `href="https://github.com/octocat/api"`)
	assert.NotContains(t, out, "javascript:")
}

func TestProjectCard_OmitsEmptyTopicsAndDatetime(t *testing.T) {
	out := render(t, components.ProjectCard(model.ProjectCard{Title: "x", RepoURL: "https://github.com/o/x"}))

	assert.NotContains(t, out, "project-topics")
	assert.Contains(t, out, "<time>")
}

func TestProjectsSection_RendersGridAttributesAndContent(t *testing.T) {
	content := model.FeedContent{Cards: []model.ProjectCard{{Title: "one"}, {Title: "two"}}}
	grid := &components.Grid{
		ID:      "projects-grid",
		Attrs:   map[string]string{"data-limit": "2"},
		Content: &content,
	}

	out := render(t, components.ProjectsSection(grid, true))

	assert.Contains(t, out, `<div id="projects-grid" class="projects-grid" data-limit="2">`)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte(`class="project-card"`)))
	assert.Contains(t, out, `class="see-all"`)
}

func TestProjectsSection_UnreplacedGridIsEmpty(t *testing.T) {
	out := render(t, components.ProjectsSection(&components.Grid{ID: "projects-grid"}, false))

	assert.Contains(t, out, `<div id="projects-grid" class="projects-grid"></div>`)
	assert.NotContains(t, out, "see-all")
}
