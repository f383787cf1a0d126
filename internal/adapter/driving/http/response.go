package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pecoelho01/portfolio/internal/application"
	"github.com/pecoelho01/portfolio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ProjectResponse is the JSON representation of a rendered project.
type ProjectResponse struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	DemoURL     string   `json:"demo_url,omitempty"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Proposal    string   `json:"proposal"`
	Objective   string   `json:"objective"`
	UpdatedAt   string   `json:"updated_at"`
	UpdatedAgo  string   `json:"updated_ago"`
}

// healthResponse is the JSON body of the health endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

func toProjectResponse(p model.Project, now time.Time) ProjectResponse {
	description, _ := model.Present(p.Repo.Description)
	language, _ := model.Present(p.Repo.Language)

	return ProjectResponse{
		Name:        p.Repo.Name,
		URL:         p.Repo.HTMLURL,
		DemoURL:     application.NormalizeHomepage(p.Repo.Homepage),
		Description: description,
		Language:    language,
		Topics:      application.CapTopics(p.Repo.Topics),
		Proposal:    p.Brief.Proposal,
		Objective:   p.Brief.Objective,
		UpdatedAt:   p.Repo.UpdatedAt.UTC().Format(time.RFC3339),
		UpdatedAgo:  application.RelativeTime(p.Repo.UpdatedAt, now),
	}
}
