package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

const (
	visitorCookieName = "portfolio_visitor"
	visitorCookieTTL  = 365 * 24 * time.Hour

	// colorSchemeHint is the client hint carrying the visitor's system
	// color-scheme preference.
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// visitorID returns the id scoping the visitor's stored preferences, issuing a
// new cookie when the request carries none or an invalid one.
func visitorID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(visitorCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(visitorCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return id
}

// clientHintSignal reads the system color-scheme preference from the
// request's client hint header.
type clientHintSignal struct {
	value string
}

var _ driven.ColorSchemeSignal = clientHintSignal{}

func colorSchemeSignal(r *http.Request) clientHintSignal {
	return clientHintSignal{value: strings.Trim(r.Header.Get(colorSchemeHint), `" `)}
}

func (s clientHintSignal) PrefersDark() bool {
	return s.value == "dark"
}

// advertiseColorSchemeHint asks the browser to send the color-scheme hint on
// subsequent requests, and on a retry of this one when it is missing.
func advertiseColorSchemeHint(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Accept-CH", colorSchemeHint)
	h.Set("Critical-CH", colorSchemeHint)
	h.Add("Vary", colorSchemeHint)
}
