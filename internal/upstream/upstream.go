// Package upstream is the shared HTTP plumbing for the third-party JSON APIs
// (prayer times, Quran text). Calls are made once, without retries.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/metrics"
)

// ErrUpstream marks a failed or unusable response from an external service.
var ErrUpstream = errors.New("upstream service failure")

const maxBody = 4 << 20

type Client struct {
	name    string
	baseURL string
	http    *http.Client
}

func New(name, baseURL string, timeout time.Duration) *Client {
	return &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string { return c.name }

// URL joins path and query onto the base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// GetJSON fetches path and returns the raw body. Transport errors, non-2xx
// statuses and non-JSON bodies all come back wrapped in ErrUpstream.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	body, err := c.get(ctx, c.URL(path, query))
	metrics.RecordUpstream(c.name, err)
	return body, err
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("service", c.name).Str("url", target).Msg("upstream request failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		log.Error().Err(err).Str("service", c.name).Str("url", target).Msg("reading upstream body failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Str("service", c.name).Str("url", target).Int("status", resp.StatusCode).Msg("upstream returned error status")
		return nil, fmt.Errorf("%w: %s returned %d", ErrUpstream, c.name, resp.StatusCode)
	}
	if !json.Valid(body) {
		log.Error().Str("service", c.name).Str("url", target).Msg("upstream returned invalid JSON")
		return nil, fmt.Errorf("%w: %s returned invalid JSON", ErrUpstream, c.name)
	}
	return body, nil
}
