package driven

import "context"

// PreferenceStore defines the driven port for the persisted key/value
// preferences of one visitor scope. Get returns ("", nil) when the key has
// never been written.
type PreferenceStore interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Set(ctx context.Context, scope, key, value string) error
}

// ColorSchemeSignal reports the system-level color scheme preference.
type ColorSchemeSignal interface {
	PrefersDark() bool
}
