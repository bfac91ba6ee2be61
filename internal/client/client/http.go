package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/common"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const maxBodySize = 1 << 20

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	logger  logging.Logger
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout bounds every request. Zero means no client-side bound.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.timeout = d }
}

// WithRateLimit throttles outgoing requests to rps per second. Zero or
// negative disables throttling.
func WithRateLimit(rps float64) Option {
	return func(h *HTTPClient) {
		if rps > 0 {
			h.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger attaches a logger for request failures.
func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

// NewHTTPClient builds a client for the API rooted at baseURL, e.g.
// "https://bdtunnel.com/api".
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do issues a single request. body is JSON-encoded when non-nil; the response
// is decoded into out when out is non-nil. A non-empty token is sent as a
// bearer token.
func (c *HTTPClient) Do(ctx context.Context, method, path, token string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logError(ctx, "request failed", method, path, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logError(ctx, "reading response failed", method, path, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := c.mapResponse(resp.StatusCode, data); err != nil {
		c.logError(ctx, "request rejected", method, path, err)
		return err
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// mapResponse turns an HTTP answer into nil or a *DomainError.
func (c *HTTPClient) mapResponse(status int, data []byte) error {
	trimmed := bytes.TrimSpace(data)

	var eb errorBody
	hasJSONError := len(trimmed) > 0 && trimmed[0] == '{' &&
		json.Unmarshal(trimmed, &eb) == nil && eb.Error != ""

	if status >= 200 && status < 300 {
		if hasJSONError {
			return newDomainError(status, eb.Error)
		}
		return nil
	}

	switch {
	case hasJSONError:
		return newDomainError(status, eb.Error)
	case len(trimmed) > 0 && trimmed[0] != '{' && trimmed[0] != '[':
		return newDomainError(status, string(trimmed))
	default:
		return newDomainError(status, "")
	}
}

func (c *HTTPClient) logError(ctx context.Context, msg, method, path string, err error) {
	if c.logger == nil {
		return
	}
	var de *DomainError
	if errors.As(err, &de) {
		c.logger.Warn(ctx, msg, "method", method, "path", path, "status", de.Status, "error", de.Message)
		return
	}
	c.logger.Error(ctx, msg, "method", method, "path", path, "error", err.Error())
}

func (c *HTTPClient) Packages(ctx context.Context) ([]models.Package, error) {
	var out []models.Package
	if err := c.Do(ctx, http.MethodGet, "/packages", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var out models.AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error) {
	var out models.SignupResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/signup", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.Do(ctx, http.MethodGet, "/user/profile", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEmail(ctx context.Context, token, email string) error {
	req := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.Do(ctx, http.MethodPut, "/user/update", token, req, nil)
}

func (c *HTTPClient) AdminUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	if err := c.Do(ctx, http.MethodGet, "/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SuspendUser(ctx context.Context, token string, id int64) error {
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/suspend", id), token, nil, nil)
}

func (c *HTTPClient) ActivateUser(ctx context.Context, token string, id int64) error {
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/activate", id), token, nil, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d/delete", id), token, nil, nil)
}

func (c *HTTPClient) ResellerQuota(ctx context.Context, token string) (*models.Quota, error) {
	var out models.Quota
	if err := c.Do(ctx, http.MethodGet, "/reseller/quota", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ResellerUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	if err := c.Do(ctx, http.MethodGet, "/reseller/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ResellerCreateUser(ctx context.Context, token, email string, expiryDays int) (*models.Credentials, error) {
	req := struct {
		Email      string `json:"email"`
		ExpiryDays int    `json:"expiry_days"`
	}{Email: email, ExpiryDays: expiryDays}

	var out models.Credentials
	if err := c.Do(ctx, http.MethodPost, "/reseller/create-user", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
