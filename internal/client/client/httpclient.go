package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
	"github.com/dmitrijs2005/userdeck/internal/common"
	"github.com/dmitrijs2005/userdeck/internal/logging"
)

// maxErrorBody bounds how much of an error answer is read.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	tokens     TokenSource
	logger     logging.Logger
}

type Option func(*HTTPClient)

func WithAPIKey(key string) Option {
	return func(c *HTTPClient) { c.apiKey = key }
}

// WithTimeout sets the per-request timeout. Zero keeps the timeout of the
// underlying http.Client. A client passed with WithHTTPClient is not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient returns a client for the API rooted at baseURL,
// e.g. "https://reqres.in/api".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// UseTokenSource sets where authenticated calls read the credential from.
func (c *HTTPClient) UseTokenSource(ts TokenSource) {
	c.tokens = ts
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	var resp loginResponse

	req := loginRequest{Email: email, Password: string(password)}
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, false, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrEmptyToken
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var p models.Page
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int, patch models.UserPatch) error {
	return c.do(ctx, http.MethodPut, "/users/"+strconv.Itoa(id), nil, patch, true, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil, true, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, authenticated bool, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	}
	if authenticated && c.tokens != nil {
		if cred, ok := c.tokens.CurrentCredential(); ok {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+cred.Token)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode response: empty body")
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(b) == 0 {
		return apiErr
	}
	var er errorResponse
	if json.Unmarshal(b, &er) == nil {
		apiErr.Message = er.Error
	}
	return apiErr
}
