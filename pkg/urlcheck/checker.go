// Package urlcheck resolves URL liveness against a live network fetch,
// applying curated ignore and suppress policies for known-flaky third-party
// sites. A check is a single fetch bounded by connect and read timeouts;
// there is no retry - a timeout or error is final for that URL within one
// build.
package urlcheck

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/endoflife-date/eolint/pkg/constants"
	"github.com/endoflife-date/eolint/pkg/logger"
)

var checkerLog = logger.New("urlcheck:checker")

// Outcome classifies the result of a URL check.
type Outcome int

const (
	// OutcomeOK means the URL resolved with a success status.
	OutcomeOK Outcome = iota
	// OutcomeIgnored means the URL matched the ignore list; no fetch was made.
	OutcomeIgnored
	// OutcomeSuppressed means the fetch failed but the URL matched the
	// suppress list; the failure is a warning, not an error.
	OutcomeSuppressed
	// OutcomeFailed means the fetch failed or returned status >= 400.
	OutcomeFailed
)

// Result is the discriminated result of a check. Reason is empty for
// OutcomeOK; for OutcomeIgnored and OutcomeSuppressed it carries the curated
// policy reason, and for OutcomeSuppressed and OutcomeFailed Detail carries
// what went wrong with the fetch.
type Result struct {
	Outcome Outcome
	Reason  string
	Detail  string
}

// Checker performs URL liveness checks.
type Checker struct {
	client    *http.Client
	userAgent string
	ignore    []PrefixRule
	suppress  []PrefixRule
}

// Option configures a Checker.
type Option func(*Checker)

// WithClient replaces the HTTP client, used by tests to shorten timeouts.
func WithClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

// WithPolicies replaces the ignore and suppress tables.
func WithPolicies(ignore, suppress []PrefixRule) Option {
	return func(c *Checker) {
		c.ignore = ignore
		c.suppress = suppress
	}
}

// NewChecker creates a Checker with the default timeouts and the embedded
// policy tables.
func NewChecker(opts ...Option) (*Checker, error) {
	ignore, suppress, err := DefaultPolicies()
	if err != nil {
		return nil, fmt.Errorf("failed to load URL policies: %w", err)
	}

	checker := &Checker{
		client:    newClient(constants.URLConnectTimeout, constants.URLReadTimeout),
		userAgent: constants.URLCheckUserAgent,
		ignore:    ignore,
		suppress:  suppress,
	}
	for _, opt := range opts {
		opt(checker)
	}

	checkerLog.Printf("Checker ready: ignore=%d, suppress=%d", len(checker.ignore), len(checker.suppress))
	return checker, nil
}

// newClient builds an HTTP client with a short connect timeout and a longer
// overall deadline. Redirects are followed; a fetch that ends in a success
// status after redirection is a success.
func newClient(connectTimeout, readTimeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: readTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: connectTimeout,
		},
	}
}

// Check resolves the liveness of one URL. Ignore-listed URLs return
// OutcomeIgnored without any network access. Otherwise a single fetch runs;
// any failure (timeout, connection or TLS failure, malformed response,
// status >= 400) becomes OutcomeSuppressed when the URL matches the suppress
// list and OutcomeFailed when it does not.
func (c *Checker) Check(ctx context.Context, url string) Result {
	if rule := matchPrefix(c.ignore, url); rule != nil {
		checkerLog.Printf("Skipping ignored URL %s (%s)", url, rule.Reason)
		return Result{Outcome: OutcomeIgnored, Reason: rule.Reason}
	}

	detail := c.fetch(ctx, url)
	if detail == "" {
		return Result{Outcome: OutcomeOK}
	}

	if rule := matchPrefix(c.suppress, url); rule != nil {
		checkerLog.Printf("Suppressed failure for %s: %s (%s)", url, detail, rule.Reason)
		return Result{Outcome: OutcomeSuppressed, Reason: rule.Reason, Detail: detail}
	}

	checkerLog.Printf("URL check failed for %s: %s", url, detail)
	return Result{Outcome: OutcomeFailed, Detail: detail}
}

// fetch performs the network request and returns a failure description, or
// the empty string on success.
func (c *Checker) fetch(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Sprintf("invalid URL: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Sprintf("fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Sprintf("received status %d", resp.StatusCode)
	}

	return ""
}
