// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pecoelho01/portfolio/internal/domain/model"
	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

const (
	// ProjectsContainerID identifies the container owned by the feed renderer.
	ProjectsContainerID = "projects-grid"

	// LimitAttr is the optional container attribute holding the render limit.
	LimitAttr = "data-limit"

	statusEmpty  = "Nenhum projeto público encontrado."
	statusFailed = "Não foi possível carregar os projetos agora."
)

// FeedOptions configures a FeedService.
type FeedOptions struct {
	Limits   model.LimitDefaults
	Location *time.Location // time zone for card dates; nil means UTC
}

// FeedService fetches the account's repositories and turns them into the
// content of the projects container.
type FeedService struct {
	lister    driven.RepoLister
	overrides driven.OverrideSource
	account   string
	limits    model.LimitDefaults
	loc       *time.Location
	logger    *slog.Logger

	// inflight coalesces concurrent renders into one upstream request.
	inflight singleflight.Group
}

// NewFeedService creates a FeedService. overrides may be nil when no override
// table is configured.
func NewFeedService(
	lister driven.RepoLister,
	overrides driven.OverrideSource,
	account string,
	opts FeedOptions,
	logger *slog.Logger,
) *FeedService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	return &FeedService{
		lister:    lister,
		overrides: overrides,
		account:   account,
		limits:    opts.Limits,
		loc:       loc,
		logger:    logger,
	}
}

// Account returns the GitHub account whose repositories are rendered.
func (s *FeedService) Account() string {
	return s.account
}

// Limits returns the configured default render limits.
func (s *FeedService) Limits() model.LimitDefaults {
	return s.limits
}

// LoadProjects renders the projects container of doc. It is a no-op when the
// document has no such container. Failures never escape: they are logged and
// rendered as a status message with a fallback link.
func (s *FeedService) LoadProjects(ctx context.Context, doc driven.Document) {
	container, ok := doc.Container(ProjectsContainerID)
	if !ok {
		return
	}

	limit := model.ResolveRenderLimit(container.Attr(LimitAttr), IsLandingPage(doc.Path()), s.limits)
	container.Replace(s.Render(ctx, limit))
}

// Render produces the container content for at most limit projects.
func (s *FeedService) Render(ctx context.Context, limit int) model.FeedContent {
	projects, err := s.Projects(ctx, limit)
	if err != nil {
		s.logger.Error("failed to load projects", "account", s.account, "error", err)
		return model.FeedContent{
			Status:      StatusMessage(err),
			FallbackURL: s.FallbackURL(),
		}
	}

	if len(projects) == 0 {
		return model.FeedContent{Status: statusEmpty}
	}

	cards := make([]model.ProjectCard, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, BuildCard(p, i, s.loc))
	}

	return model.FeedContent{Cards: cards}
}

// Projects fetches the repository listing and returns at most limit non-fork
// repositories with their briefs, in the order the API returned them.
func (s *FeedService) Projects(ctx context.Context, limit int) ([]model.Project, error) {
	repos, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var overrides model.OverrideTable
	if s.overrides != nil {
		overrides = s.overrides.Overrides()
	}

	projects := make([]model.Project, 0, max(0, min(limit, len(repos))))
	for _, repo := range repos {
		if len(projects) >= limit {
			break
		}
		if repo.Fork {
			continue
		}
		projects = append(projects, model.Project{
			Repo:  repo,
			Brief: ProjectBrief(repo, overrides),
		})
	}

	return projects, nil
}

// FallbackURL is the account's repository tab on GitHub, linked when the feed
// cannot be loaded.
func (s *FeedService) FallbackURL() string {
	return fmt.Sprintf("https://github.com/%s?tab=repositories", url.PathEscape(s.account))
}

// Location returns the time zone used for card dates.
func (s *FeedService) Location() *time.Location {
	return s.loc
}

func (s *FeedService) fetch(ctx context.Context) ([]model.RepositorySummary, error) {
	start := time.Now()

	v, err, shared := s.inflight.Do(s.account, func() (any, error) {
		return s.lister.ListRepositories(ctx, s.account)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}

	repos := v.([]model.RepositorySummary)
	s.logger.Debug("repositories fetched",
		"account", s.account,
		"count", len(repos),
		"shared", shared,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return repos, nil
}

// StatusMessage is the user-visible text for a failed fetch. Only upstream
// HTTP failures show their own message. Transport and decode errors show the
// generic text even when they carry a message, since theirs are internal
// (dial addresses, JSON offsets) and are logged instead.
func StatusMessage(err error) string {
	var statusErr *model.HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return statusFailed
}

// IsLandingPage reports whether path is the site's landing page.
func IsLandingPage(path string) bool {
	switch path {
	case "", "/", "/index.html":
		return true
	default:
		return false
	}
}
