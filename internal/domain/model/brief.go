package model

// ProjectBrief is the derived proposal/objective pair shown on a project card.
// It exists only for the duration of a render pass.
type ProjectBrief struct {
	Proposal  string
	Objective string

	// Set when the text came from an override entry. Override text may
	// contain inline Markdown; synthesized text is always plain.
	ProposalOverridden  bool
	ObjectiveOverridden bool
}

// BriefOverride is a hand-written brief for one repository. Empty fields fall
// back to the synthesized value.
type BriefOverride struct {
	Proposal  string `toml:"proposal" yaml:"proposal"`
	Objective string `toml:"objective" yaml:"objective"`
}

// OverrideTable maps normalized repository names to their override.
type OverrideTable map[string]BriefOverride

// Lookup normalizes name and returns the matching override, if any.
func (t OverrideTable) Lookup(name string) (BriefOverride, bool) {
	if t == nil {
		return BriefOverride{}, false
	}
	o, ok := t[NormalizeName(name)]
	return o, ok
}

// Overrides returns the table itself, so a static table can be used wherever
// an override source is expected.
func (t OverrideTable) Overrides() OverrideTable {
	return t
}
