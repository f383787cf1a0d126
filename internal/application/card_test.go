package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pecoelho01/portfolio/internal/domain/model"
)

func TestNormalizeHomepage(t *testing.T) {
	tests := []struct {
		name     string
		homepage *string
		want     string
	}{
		{name: "absent", homepage: nil, want: ""},
		{name: "empty", homepage: strPtr(""), want: ""},
		{name: "blank", homepage: strPtr("   "), want: ""},
		{name: "bare host", homepage: strPtr("example.com"), want: "https://example.com"},
		{name: "https kept", homepage: strPtr("https://x.io"), want: "https://x.io"},
		{name: "http kept", homepage: strPtr("http://x.io/path"), want: "http://x.io/path"},
		{name: "trimmed", homepage: strPtr("  example.com/demo "), want: "https://example.com/demo"},
		{name: "host with port", homepage: strPtr("example.com:8080"), want: "https://example.com:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHomepage(tt.homepage))
		})
	}
}

func TestFormatDate(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	assert.Equal(t, "05 de mar. de 2024", FormatDate(time.Date(2024, time.March, 5, 15, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, "31 de dez. de 2023", FormatDate(time.Date(2024, time.January, 1, 1, 0, 0, 0, time.UTC), saoPaulo))
	assert.Equal(t, "", FormatDate(time.Time{}, time.UTC))
}

func TestBuildCard_AnimationDelay(t *testing.T) {
	p := model.Project{Repo: model.RepositorySummary{Name: "x"}}

	assert.Equal(t, time.Duration(0), BuildCard(p, 0, time.UTC).AnimationDelay)
	assert.Equal(t, 240*time.Millisecond, BuildCard(p, 3, time.UTC).AnimationDelay)
}

func TestBuildCard_TitleUnmodified(t *testing.T) {
	p := model.Project{Repo: model.RepositorySummary{Name: "<b>odd</b> name"}}

	assert.Equal(t, "<b>odd</b> name", BuildCard(p, 0, time.UTC).Title)
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, time.March, 8, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		then time.Time
		want string
	}{
		{then: now, want: "agora"},
		{then: now.Add(-90 * time.Second), want: "1 minuto atrás"},
		{then: now.Add(-5 * time.Hour), want: "5 horas atrás"},
		{then: now.Add(-72 * time.Hour), want: "3 dias atrás"},
		{then: now.Add(-400 * 24 * time.Hour), want: "1 ano atrás"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.then, now))
		})
	}
}
