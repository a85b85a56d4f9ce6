// ABOUTME: Proxy fetcher retrieves raw feed bodies through ordered CORS relay endpoints
// ABOUTME: Absorbs every per-proxy failure; exhaustion is reported as a value, not an error

package fetch

import (
	"context"
	"io"
	"net/url"
	"time"

	"aipulse-api/core/interfaces"
)

// DefaultTimeout bounds a single proxy attempt.
const DefaultTimeout = 8 * time.Second

// ProxyBuilder wraps a target URL into a relay request URL.
type ProxyBuilder func(target string) string

// DefaultProxies returns the ordered list of public CORS relay builders.
// Each wraps the target feed URL as a query-encoded parameter.
func DefaultProxies() []ProxyBuilder {
	return []ProxyBuilder{
		func(target string) string {
			return "https://api.allorigins.win/raw?url=" + url.QueryEscape(target)
		},
		func(target string) string {
			return "https://corsproxy.io/?" + url.QueryEscape(target)
		},
	}
}

// Client fetches raw feed content through an ordered list of relay proxies.
type Client struct {
	deps    interfaces.Dependencies
	proxies []ProxyBuilder
	timeout time.Duration
}

// NewClient creates a proxy fetch client. A nil or empty proxies list falls
// back to DefaultProxies; a non-positive timeout falls back to DefaultTimeout.
func NewClient(deps interfaces.Dependencies, proxies []ProxyBuilder, timeout time.Duration) *Client {
	if len(proxies) == 0 {
		proxies = DefaultProxies()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		deps:    deps,
		proxies: proxies,
		timeout: timeout,
	}
}

// FetchRaw attempts to retrieve the target URL through each proxy in order,
// one attempt per proxy, each bounded by the client timeout. The first 2xx
// response body wins and short-circuits the remaining proxies. Every failure
// (timeout, network error, non-2xx) is absorbed; when all proxies fail the
// second return value is false.
func (c *Client) FetchRaw(ctx context.Context, target string) (string, bool) {
	for _, proxy := range c.proxies {
		body, ok := c.fetchOnce(ctx, proxy(target))
		if ok {
			return body, true
		}
	}

	if c.deps.Logger != nil {
		c.deps.Logger.Warn("All proxies failed for feed", map[string]interface{}{
			"url":     target,
			"proxies": len(c.proxies),
		})
	}

	return "", false
}

// fetchOnce performs a single bounded attempt against one proxy URL.
func (c *Client) fetchOnce(ctx context.Context, proxyURL string) (string, bool) {
	if c.deps.HTTPClient == nil {
		return "", false
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.deps.HTTPClient.Get(attemptCtx, proxyURL)
	if err != nil {
		c.logAttemptFailure(proxyURL, err.Error())
		return "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		c.logAttemptFailure(proxyURL, "non-2xx status")
		return "", false
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		c.logAttemptFailure(proxyURL, err.Error())
		return "", false
	}

	return string(bodyBytes), true
}

func (c *Client) logAttemptFailure(proxyURL, reason string) {
	if c.deps.Logger == nil {
		return
	}
	c.deps.Logger.Debug("Proxy attempt failed", map[string]interface{}{
		"proxy_url": proxyURL,
		"reason":    reason,
	})
}
