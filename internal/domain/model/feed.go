package model

import "time"

// Project pairs a repository with its derived brief.
type Project struct {
	Repo  RepositorySummary
	Brief ProjectBrief
}

// ProjectCard holds presentation-ready data for one card in the projects grid.
type ProjectCard struct {
	Title          string
	Description    string
	Topics         []string
	Brief          ProjectBrief
	Language       string
	UpdatedAt      time.Time
	UpdatedLabel   string
	RepoURL        string
	DemoURL        string // empty when the repository has no homepage
	AnimationDelay time.Duration
}

// FeedContent is the complete content of the projects container after one
// render pass. Exactly one shape is populated: Cards, a Status alone (the
// query succeeded with nothing to show), or a Status with a FallbackURL (the
// fetch failed).
type FeedContent struct {
	Cards       []ProjectCard
	Status      string
	FallbackURL string
}

// Failed reports whether the content is the failure variant.
func (c FeedContent) Failed() bool {
	return c.FallbackURL != ""
}
