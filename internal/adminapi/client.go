// Package adminapi is the typed client of the e-commerce admin REST API.
//
// Every operation performs exactly one HTTP exchange against the configured
// base URL and unwraps the {success, message, data} envelope into a typed,
// validated payload. There are no retries, no client-side timeout and no
// caching; cancellation is left to the caller's context.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	contentTypeJSON = "application/json"
)

var (
	errMissingSuccess = errors.New(`envelope has no "success" field`)
	errMissingData    = errors.New(`envelope has no "data" payload`)
)

// TokenSource supplies the bearer token attached to each request. An empty
// token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *slog.Logger
	validate   *validator.Validate
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a client for the API rooted at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, out)
}

// send performs one exchange. A nil out means the operation returns no payload.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	rid := uuid.NewString()
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(RequestIDHeader, rid)
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("admin api call failed", "request_id", rid, "method", method, "path", path, "error", err)
		return &TransportError{Err: err}
	}
	defer res.Body.Close()

	c.log.Debug("admin api call",
		"request_id", rid, "method", method, "path", path,
		"status", res.StatusCode, "dur", time.Since(start))

	return c.decode(res, out)
}

type rawEnvelope struct {
	Success *bool           `json:"success"`
	Message *string         `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) decode(res *http.Response, out any) error {
	body, readErr := io.ReadAll(res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		terr := &TransportError{StatusCode: res.StatusCode, StatusText: statusText(res)}
		var env rawEnvelope
		if readErr == nil && json.Unmarshal(body, &env) == nil && env.Message != nil {
			terr.Message = *env.Message
		}
		return terr
	}
	if readErr != nil {
		return &DecodeError{Err: fmt.Errorf("read body: %w", readErr)}
	}

	var env rawEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &DecodeError{Err: err}
	}
	if env.Success == nil {
		return &DecodeError{Err: errMissingSuccess}
	}
	if !*env.Success {
		msg := DefaultApplicationMessage
		if env.Message != nil && *env.Message != "" {
			msg = *env.Message
		}
		return &ApplicationError{Message: msg}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return &DecodeError{Err: errMissingData}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DecodeError{Err: err}
	}
	if err := c.check(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// check validates a decoded payload against its struct tags and, for
// paginated payloads, the page invariants.
func (c *Client) check(v any) error {
	if p, ok := v.(interface{ Validate() error }); ok {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return c.validate.Struct(rv.Interface())
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			el := rv.Index(i)
			if el.Kind() != reflect.Struct {
				continue
			}
			if err := c.validate.Struct(el.Interface()); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}

func statusText(res *http.Response) string {
	if t := http.StatusText(res.StatusCode); t != "" {
		return t
	}
	return res.Status
}

func requireID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}
