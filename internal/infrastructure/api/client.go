// Package api implements the HTTP client for the print service's REST
// contract. Authentication rides on the server's session cookie, held in an
// in-memory jar that lives and dies with the process run.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// Client is the shared transport for all endpoint groups. The timeout
// bounds every round trip; a hung request fails like any other transport
// error instead of wedging the caller.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     zerolog.Logger
}

// New builds a client for the server at baseURL. A timeout of zero falls
// back to the default.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server url %q must be absolute", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout, Jar: jar},
		log:     log,
	}, nil
}

// do performs one round trip and returns the raw body for 2xx responses.
// Non-2xx responses become a *StatusError carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, header http.Header) ([]byte, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		serr := newStatusError(resp.StatusCode, data)
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Str("message", serr.Message).Msg("api error")
		return nil, serr
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, nil)
}
