package httphandler

import "time"

// SetNow replaces the handler's clock.
func (h *Handler) SetNow(now func() time.Time) {
	h.now = now
}
