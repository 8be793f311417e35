// Package pwned checks passwords against the Have I Been Pwned
// compromised-password corpus using its k-anonymity range API: only the
// first five characters of the password's SHA-1 digest ever leave the
// process, and the service answers with every known digest suffix in
// that bucket.
package pwned

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultEndpoint is the public range-query API base URL.
	DefaultEndpoint = "https://api.pwnedpasswords.com/range"

	// DefaultTimeout bounds a single range query.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "pwdctl"

	prefixLen = 5
)

// BucketCache stores range-query response bodies keyed by digest prefix.
// Get reports a miss (or a stale entry) with ok false; Put failures are
// logged by the client but never fail a lookup.
type BucketCache interface {
	Get(prefix string) (body string, ok bool)
	Put(prefix, body string) error
}

// Client queries the range API. Use New to construct one.
type Client struct {
	endpoint  string
	userAgent string
	client    *http.Client
	cache     BucketCache
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the range API base URL.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient overrides the HTTP client, including its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithUserAgent sets the User-Agent header sent to the service.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithCache adds a local bucket cache consulted before the network.
func WithCache(bc BucketCache) Option {
	return func(c *Client) {
		c.cache = bc
	}
}

// New returns a Client for the public endpoint with a bounded timeout.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:  DefaultEndpoint,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Count returns the number of times the password appears in known
// breaches, or 0 if it was never seen. Any transport failure, timeout,
// or non-success status returns a non-nil error wrapping the cause,
// never a misleading zero count.
func (c *Client) Count(ctx context.Context, password string) (int64, error) {
	prefix, suffix := splitDigest(password)

	if c.cache != nil {
		if body, ok := c.cache.Get(prefix); ok {
			slog.Debug("range bucket served from cache", "prefix", prefix)
			return matchCount(body, suffix)
		}
	}

	body, err := c.fetchBucket(ctx, prefix)
	if err != nil {
		return 0, err
	}

	if c.cache != nil {
		if err := c.cache.Put(prefix, body); err != nil {
			slog.Debug("range bucket cache write failed", "prefix", prefix, "error", err)
		}
	}

	return matchCount(body, suffix)
}

// splitDigest hashes the password and splits its 40-character uppercase
// hex SHA-1 digest into the 5-character bucket prefix and the
// 35-character suffix.
func splitDigest(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:prefixLen], digest[prefixLen:]
}

func (c *Client) fetchBucket(ctx context.Context, prefix string) (string, error) {
	url := fmt.Sprintf("%s/%s", c.endpoint, prefix)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "error creating range request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "error querying breach service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("breach service returned %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "error reading range response")
	}
	return string(b), nil
}

// matchCount scans the bucket's SUFFIX:COUNT lines for an exact,
// case-sensitive suffix match and returns its count. A bucket without
// the suffix means the password is not in the corpus.
func matchCount(body, suffix string) (int64, error) {
	s := bufio.NewScanner(strings.NewReader(body))
	for s.Scan() {
		found, count, ok := strings.Cut(strings.TrimSpace(s.Text()), ":")
		if !ok || found != suffix {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "error parsing breach count %q", count)
		}
		return n, nil
	}
	if err := s.Err(); err != nil {
		return 0, errors.Wrap(err, "error scanning range response")
	}
	return 0, nil
}
