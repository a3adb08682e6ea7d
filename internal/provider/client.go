package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"marketgate/internal/domain"
)

const maxErrorBodyBytes = 64 << 10

// Doer is the transport seam: a real *http.Client in production, a recording
// fake in tests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientOptions struct {
	Name         string // provider label used in spans and errors
	BaseURL      string
	APIKey       string
	APIKeyHeader string // request header carrying the key
	KeyEnv       string // env var reported when the key is missing
	Timeout      time.Duration
	Doer         Doer
	Tracer       trace.Tracer
}

// Client issues single-attempt GET requests against one provider base URL.
// It is stateless per call; no retries, no redirect on error bodies.
type Client struct {
	opts ClientOptions
	http Doer
}

func NewClient(opts ClientOptions) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	doer := opts.Doer
	if doer == nil {
		doer = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{opts: opts, http: doer}
}

// Get performs one GET against path with params and returns the raw body for
// any 2xx status. Non-2xx statuses become *domain.UpstreamError; a missing API
// key becomes *domain.ConfigError before any I/O.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if strings.TrimSpace(c.opts.APIKey) == "" {
		return nil, &domain.ConfigError{Key: c.opts.KeyEnv}
	}

	endpoint := c.opts.BaseURL + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var span trace.Span
	if c.opts.Tracer != nil {
		ctx, span = c.opts.Tracer.Start(ctx, "provider."+c.opts.Name+".get")
		span.SetAttributes(attribute.String("http.path", path))
		defer span.End()
	}

	slog.Info("provider request",
		"provider", c.opts.Name,
		"path", path,
		"params", Redact(params.Encode(), c.opts.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", c.opts.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.opts.APIKeyHeader, c.opts.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return nil, fmt.Errorf("%s request failed: %w", c.opts.Name, err)
	}
	defer resp.Body.Close()

	if span != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		upstream := &domain.UpstreamError{
			Provider:   c.opts.Name,
			StatusCode: resp.StatusCode,
			Body:       Redact(string(body), c.opts.APIKey),
		}
		if span != nil {
			span.RecordError(upstream)
		}
		return nil, upstream
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", c.opts.Name, err)
	}
	return body, nil
}

// GetJSON decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, out any) error {
	body, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", c.opts.Name, err)
	}
	return nil
}

var hexSecretRe = regexp.MustCompile(`(?i)\b[a-f0-9]{32,}\b`)

// Redact strips a known secret and anything that looks like a long hex token
// from msg. Applied to everything that can end up in logs or error bodies.
func Redact(msg, secret string) string {
	if secret != "" {
		msg = strings.ReplaceAll(msg, secret, "[REDACTED]")
		if escaped := url.QueryEscape(secret); escaped != secret {
			msg = strings.ReplaceAll(msg, escaped, "[REDACTED]")
		}
	}
	return hexSecretRe.ReplaceAllString(msg, "[REDACTED]")
}
