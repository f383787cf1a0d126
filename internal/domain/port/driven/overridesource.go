package driven

import "github.com/pecoelho01/portfolio/internal/domain/model"

// OverrideSource supplies the current per-repository brief overrides. The
// returned table must not be mutated by callers.
type OverrideSource interface {
	Overrides() model.OverrideTable
}
