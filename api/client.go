package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
)

// TokenSource yields the bearer token for outgoing requests. An empty token
// means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client is a thin JSON wrapper over the catalog API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logrus.Entry
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) { c.log = log }
}

func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if tokens == nil {
		tokens = TokenFunc(func() string { return "" })
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

// PostPublic sends a POST without the bearer token (login, register).
func (c *Client) PostPublic(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out, true)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, true)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// GetWithToken performs a GET authenticated with an explicit token instead of
// the client's token source.
func (c *Client) GetWithToken(ctx context.Context, path, token string) error {
	return c.send(ctx, http.MethodGet, path, nil, nil, token)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	token := ""
	if authenticated {
		token = c.tokens.Token()
	}
	return c.send(ctx, method, path, body, out, token)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, token string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID, err := gonanoid.New()
	if err == nil {
		req.Header.Set("X-Request-ID", requestID)
	}
	log := c.log.WithFields(logrus.Fields{"method": method, "path": path, "request_id": requestID})

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.WithError(err).Warn("api: request failed")
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: read %s %s: %v", ErrNetwork, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.StatusCode).Debug("api: non-2xx response")
		return newError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}
