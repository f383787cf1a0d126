// Command healthcheck exits 0 when the portfolio server's health endpoint
// answers 200 and 1 otherwise. It is meant to run beside the server, so it
// resolves the listen address through the same configuration as serve.
package main

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pecoelho01/portfolio/internal/config"
)

const requestTimeout = 2 * time.Second

func main() {
	os.Exit(check(context.Background(), healthURL(config.ListenAddr())))
}

func check(ctx context.Context, target string) int {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 1
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 1
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 1
	}
	return 0
}

func healthURL(listenAddr string) string {
	u := url.URL{Scheme: "http", Host: loopbackAddr(listenAddr), Path: "/api/v1/health"}
	return u.String()
}

// loopbackAddr rewrites a bind-all or host-less listen address to loopback.
// An address that does not parse falls back to the server's default.
func loopbackAddr(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return config.DefaultListenAddr
	}

	switch host {
	case "", "0.0.0.0":
		host = "127.0.0.1"
	case "::":
		host = "::1"
	}
	return net.JoinHostPort(host, port)
}
