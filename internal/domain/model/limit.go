package model

import (
	"strconv"
	"strings"
)

// LimitDefaults holds the render limits used when a container does not
// configure one: Landing applies on the site's landing page, Other everywhere
// else.
type LimitDefaults struct {
	Landing int
	Other   int
}

// ResolveRenderLimit returns the container's configured limit when attr is a
// positive integer, otherwise the context-dependent default.
func ResolveRenderLimit(attr string, landing bool, defaults LimitDefaults) int {
	if n, err := strconv.Atoi(strings.TrimSpace(attr)); err == nil && n > 0 {
		return n
	}
	if landing {
		return defaults.Landing
	}
	return defaults.Other
}
