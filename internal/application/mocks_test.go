package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/pecoelho01/portfolio/internal/domain/model"
	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// --- RepoLister ---

type mockRepoLister struct {
	mu       sync.Mutex
	repos    []model.RepositorySummary
	err      error
	calls    int
	accounts []string
}

func (m *mockRepoLister) ListRepositories(_ context.Context, account string) ([]model.RepositorySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.accounts = append(m.accounts, account)
	return m.repos, m.err
}

// --- PreferenceStore ---

type mockPreferenceStore struct {
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newMockPreferenceStore() *mockPreferenceStore {
	return &mockPreferenceStore{values: map[string]string{}}
}

func (m *mockPreferenceStore) Get(_ context.Context, scope, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.values[scope+"/"+key], nil
}

func (m *mockPreferenceStore) Set(_ context.Context, scope, key, value string) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[scope+"/"+key] = value
	return nil
}

var errStoreBroken = errors.New("store broken")

// --- ColorSchemeSignal ---

type staticSignal bool

func (s staticSignal) PrefersDark() bool { return bool(s) }

// --- Document ---

type fakeClassList struct {
	classes map[string]bool
}

func (c *fakeClassList) SetClass(name string, enabled bool) {
	if enabled {
		c.classes[name] = true
		return
	}
	delete(c.classes, name)
}

type fakeToggle struct {
	label  string
	action string
}

func (t *fakeToggle) SetLabel(label string)    { t.label = label }
func (t *fakeToggle) OnActivate(action string) { t.action = action }

type fakeContainer struct {
	attrs    map[string]string
	content  model.FeedContent
	replaced int
}

func (c *fakeContainer) Attr(name string) string { return c.attrs[name] }

func (c *fakeContainer) Replace(content model.FeedContent) {
	c.content = content
	c.replaced++
}

type fakeDocument struct {
	path        string
	rootTheme   string
	colorScheme string
	body        *fakeClassList
	toggle      *fakeToggle
	containers  map[string]*fakeContainer
}

// newFakeDocument returns a document with a body, a toggle control, and an
// empty projects container.
func newFakeDocument(path string) *fakeDocument {
	return &fakeDocument{
		path:   path,
		body:   &fakeClassList{classes: map[string]bool{}},
		toggle: &fakeToggle{},
		containers: map[string]*fakeContainer{
			"projects-grid": {attrs: map[string]string{}},
		},
	}
}

func (d *fakeDocument) Path() string              { return d.path }
func (d *fakeDocument) RootTheme() string         { return d.rootTheme }
func (d *fakeDocument) SetRootTheme(theme string) { d.rootTheme = theme }
func (d *fakeDocument) SetColorScheme(s string)   { d.colorScheme = s }

func (d *fakeDocument) Body() (driven.ClassList, bool) {
	if d.body == nil {
		return nil, false
	}
	return d.body, true
}

func (d *fakeDocument) ToggleControl() (driven.ToggleControl, bool) {
	if d.toggle == nil {
		return nil, false
	}
	return d.toggle, true
}

func (d *fakeDocument) Container(id string) (driven.Container, bool) {
	c, ok := d.containers[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// --- helpers ---

func strPtr(s string) *string { return &s }
