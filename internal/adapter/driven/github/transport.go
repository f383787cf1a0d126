package github

import "net/http"

// acceptMediaType is the media type requested on every API call.
const acceptMediaType = "application/vnd.github+json"

// revalidate makes the cache treat every stored response as stale, so each
// call reaches GitHub and only a 304 reuses the cached body.
const revalidate = "max-age=0"

// acceptTransport overrides the Accept header go-github sets by default and
// forces cache revalidation.
type acceptTransport struct {
	next http.RoundTripper
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Accept", acceptMediaType)
	clone.Header.Set("Cache-Control", revalidate)
	return t.next.RoundTrip(clone)
}

// withAcceptHeader returns a shallow copy of c whose transport sets the
// request headers. A nil client is treated as http.DefaultClient.
func withAcceptHeader(c *http.Client) *http.Client {
	if c == nil {
		c = http.DefaultClient
	}

	next := c.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	wrapped := *c
	wrapped.Transport = &acceptTransport{next: next}
	return &wrapped
}
