// Package overrides loads per-repository brief overrides from a TOML or YAML
// file and implements the OverrideSource port.
//
// A file maps repository names to override entries:
//
//	[overrides.portfolio]
//	proposal = "Site pessoal com *tema claro/escuro*."
//	objective = "Apresentar meus projetos."
//
// Names are normalized (trimmed, lower-cased) on load.
package overrides

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/pecoelho01/portfolio/internal/domain/model"
)

// fileFormat is the on-disk layout shared by the TOML and YAML encodings.
type fileFormat struct {
	Overrides map[string]model.BriefOverride `toml:"overrides" yaml:"overrides"`
}

// Load reads and parses the override file at path. The encoding is chosen by
// extension: .toml, or .yaml/.yml.
func Load(path string) (model.OverrideTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides %s: %w", path, err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes override file content. ext selects the encoding and includes
// the leading dot.
func Parse(data []byte, ext string) (model.OverrideTable, error) {
	var f fileFormat

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse toml overrides: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse yaml overrides: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported overrides format %q: use .toml, .yaml or .yml", ext)
	}

	table := make(model.OverrideTable, len(f.Overrides))
	for name, o := range f.Overrides {
		key := model.NormalizeName(name)
		if key == "" {
			continue
		}
		table[key] = o
	}

	return table, nil
}
