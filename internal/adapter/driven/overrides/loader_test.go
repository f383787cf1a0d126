package overrides

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pecoelho01/portfolio/internal/domain/model"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestParse_TOML(t *testing.T) {
	data := []byte(`
[overrides."  My-Repo "]
proposal = "Proposta manual"
objective = "Objetivo manual"

[overrides.other]
objective = "Só objetivo"
`)

	table, err := Parse(data, ".toml")

	require.NoError(t, err)
	assert.Equal(t, model.OverrideTable{
		"my-repo": {Proposal: "Proposta manual", Objective: "Objetivo manual"},
		"other":   {Objective: "Só objetivo"},
	}, table)
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
overrides:
  Portfolio:
    proposal: Site pessoal
`)

	for _, ext := range []string{".yaml", ".YML"} {
		table, err := Parse(data, ext)
		require.NoError(t, err)

		o, ok := table.Lookup("portfolio")
		require.True(t, ok)
		assert.Equal(t, "Site pessoal", o.Proposal)
		assert.Empty(t, o.Objective)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`overrides = [`), ".toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse toml overrides")

	_, err = Parse([]byte("overrides: [unclosed"), ".yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml overrides")

	_, err = Parse([]byte(`{}`), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported overrides format")
}

func TestParse_EmptyFile(t *testing.T) {
	table, err := Parse(nil, ".toml")
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestNewStore_EmptyPath(t *testing.T) {
	s, err := NewStore("", discardLogger)
	require.NoError(t, err)
	assert.Empty(t, s.Overrides())
}

func TestNewStore_MissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.toml"), discardLogger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read overrides")
}

func TestStore_ReloadKeepsPreviousTableOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	require.NoError(t, os.WriteFile(path, []byte("[overrides.a]\nproposal = \"one\"\n"), 0o600))

	s, err := NewStore(path, discardLogger)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[overrides.a\n"), 0o600))
	require.Error(t, s.Reload())

	o, ok := s.Overrides().Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "one", o.Proposal)
}

func TestStore_WatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.toml")
	require.NoError(t, os.WriteFile(path, []byte("[overrides.a]\nproposal = \"one\"\n"), 0o600))

	s, err := NewStore(path, discardLogger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[overrides.a]\nproposal = \"two\"\n"), 0o600))

	assert.Eventually(t, func() bool {
		o, _ := s.Overrides().Lookup("a")
		return o.Proposal == "two"
	}, 5*time.Second, 20*time.Millisecond)
}
