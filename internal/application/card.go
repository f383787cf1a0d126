package application

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pecoelho01/portfolio/internal/domain/model"
)

const (
	// cardDelayStep is the animation delay added per card position.
	cardDelayStep = 80 * time.Millisecond

	fallbackDescription = "Sem descrição disponível."
	fallbackLanguage    = "Sem linguagem"
)

// schemePattern matches URLs that already carry an explicit "scheme://".
var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// ptBRMonths are the abbreviated month names used by the pt-BR locale.
var ptBRMonths = [12]string{
	"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

// NormalizeHomepage trims the homepage and prefixes "https://" when it lacks
// an explicit scheme. Returns "" for an absent or blank homepage.
func NormalizeHomepage(homepage *string) string {
	v, ok := model.Present(homepage)
	if !ok {
		return ""
	}
	if schemePattern.MatchString(v) {
		return v
	}
	return "https://" + v
}

// FormatDate renders t as day, abbreviated month and year the way the pt-BR
// locale does, e.g. "05 de mar. de 2024". The zero time renders as "".
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), ptBRMonths[t.Month()-1], t.Year())
}

// BuildCard assembles the presentation data for the project at position index.
func BuildCard(p model.Project, index int, loc *time.Location) model.ProjectCard {
	description := fallbackDescription
	if p.Repo.Description != nil && strings.TrimSpace(*p.Repo.Description) != "" {
		description = *p.Repo.Description
	}

	language := fallbackLanguage
	if lang, ok := model.Present(p.Repo.Language); ok {
		language = lang
	}

	return model.ProjectCard{
		Title:          p.Repo.Name,
		Description:    description,
		Topics:         CapTopics(p.Repo.Topics),
		Brief:          p.Brief,
		Language:       language,
		UpdatedAt:      p.Repo.UpdatedAt,
		UpdatedLabel:   FormatDate(p.Repo.UpdatedAt, loc),
		RepoURL:        p.Repo.HTMLURL,
		DemoURL:        NormalizeHomepage(p.Repo.Homepage),
		AnimationDelay: time.Duration(index) * cardDelayStep,
	}
}
