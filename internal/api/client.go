package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const maxResponseSize = 1 << 20

// Client provides methods to interact with the shortener backend
type Client struct {
	baseURL          *url.URL
	shortLinkBaseURL *url.URL
	http             *http.Client
	timeout          time.Duration
	logger           *slog.Logger
	validate         *validator.Validate
}

// NewClient creates a new backend API client
func NewClient(baseURL string, funcs ...OptionFunc) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid backend URL: %s", baseURL)
	}

	opts := NewOptions(funcs...)

	shortLinkBaseURL := parsedURL
	if opts.ShortLinkBaseURL != "" {
		shortLinkBaseURL, err = url.Parse(opts.ShortLinkBaseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid short link base URL: %s", opts.ShortLinkBaseURL)
		}
	}

	return &Client{
		baseURL:          parsedURL,
		shortLinkBaseURL: shortLinkBaseURL,
		http:             opts.HTTPClient,
		timeout:          opts.Timeout,
		logger:           opts.Logger.With("component", "api-client"),
		validate:         validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// ShortLink returns the public URL redirecting to the original URL of the
// given short link
func (c *Client) ShortLink(id string) string {
	return c.shortLinkBaseURL.JoinPath("s", id).String()
}

// Shorten creates a short link for originalURL
func (c *Client) Shorten(ctx context.Context, originalURL string) (*ShortURL, error) {
	var shortURL ShortURL
	if _, err := c.do(ctx, http.MethodPost, c.baseURL.JoinPath("/api/shorten"), shortenRequest{OriginalURL: originalURL}, &shortURL); err != nil {
		return nil, errors.WithStack(err)
	}

	return &shortURL, nil
}

// Login opens a backend session. A 401 response is returned as
// ErrUnauthorized.
func (c *Client) Login(ctx context.Context, credentials Credentials) (*Authentication, error) {
	var user User
	cookies, err := c.do(ctx, http.MethodPost, c.baseURL.JoinPath("/api/login"), credentials, &user)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Authentication{User: &user, Cookies: cookies}, nil
}

// Register creates an account and opens a backend session. A 409 response
// (username taken) is returned as ErrConflict.
func (c *Client) Register(ctx context.Context, registration Registration) (*Authentication, error) {
	var user User
	cookies, err := c.do(ctx, http.MethodPost, c.baseURL.JoinPath("/api/register"), registration, &user)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Authentication{User: &user, Cookies: cookies}, nil
}

// UpdateProfile updates the username and email of the current user
func (c *Client) UpdateProfile(ctx context.Context, profile Profile) error {
	if _, err := c.do(ctx, http.MethodPut, c.baseURL.JoinPath("/api/profile"), profile, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ChangePassword updates the password of the current user. A 409 response
// (wrong current password) is returned as ErrConflict.
func (c *Client) ChangePassword(ctx context.Context, change PasswordChange) error {
	if _, err := c.do(ctx, http.MethodPut, c.baseURL.JoinPath("/api/profile/password"), change, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ListURLs retrieves a page of the links of the current user
func (c *Client) ListURLs(ctx context.Context, query ListQuery) (*ListResult, error) {
	listURL := c.baseURL.JoinPath("/api/url")

	params := url.Values{}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(query.PageSize))
	}
	if query.Query != "" {
		params.Set("query", query.Query)
	}
	if query.After != nil {
		params.Set("after", query.After.Format(AfterLayout))
	}

	listURL.RawQuery = params.Encode()

	var result ListResult
	if _, err := c.do(ctx, http.MethodGet, listURL, nil, &result); err != nil {
		return nil, errors.WithStack(err)
	}

	return &result, nil
}

// ToggleURL activates or deactivates a link
func (c *Client) ToggleURL(ctx context.Context, id string) error {
	toggleURL := c.baseURL.JoinPath("/api/url", id, "toggle")

	if _, err := c.do(ctx, http.MethodPut, toggleURL, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Ping reports whether the backend answers HTTP requests. Any response below
// 500 counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return errors.WithStack(&UnexpectedStatusError{StatusCode: resp.StatusCode})
	}

	return nil
}

func (c *Client) do(ctx context.Context, method string, endpoint *url.URL, payload any, out any) ([]*http.Cookie, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request")
		}

		body = bytes.NewReader(data)
	}

	cookies := ContextCookies(ctx)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	c.logger.DebugContext(ctx, "backend call", slog.String("method", method), slog.String("path", endpoint.Path), slog.Int("status", resp.StatusCode))

	if err := checkStatus(resp.StatusCode, raw); err != nil {
		return nil, err
	}

	if out == nil {
		return resp.Cookies(), nil
	}

	if message, ok := decodeMessage(raw); ok {
		return nil, errors.WithStack(&Error{StatusCode: resp.StatusCode, Message: message})
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.WarnContext(ctx, "could not decode backend response", slogx.Error(err))
		return nil, errors.Wrapf(ErrUnexpectedResponse, "could not decode response: %s", err)
	}

	if err := c.validate.StructCtx(ctx, out); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedResponse, "invalid response: %s", err)
	}

	return resp.Cookies(), nil
}

func checkStatus(statusCode int, raw []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	switch statusCode {
	case http.StatusUnauthorized:
		return errors.WithStack(ErrUnauthorized)
	case http.StatusConflict:
		return errors.WithStack(ErrConflict)
	}

	if message, ok := decodeMessage(raw); ok {
		return errors.WithStack(&Error{StatusCode: statusCode, Message: message})
	}

	return errors.WithStack(&UnexpectedStatusError{StatusCode: statusCode, Body: string(raw)})
}

// decodeMessage reports whether raw is a JSON string and returns it.
func decodeMessage(raw []byte) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}

	var message string
	if err := json.Unmarshal(trimmed, &message); err != nil {
		return "", false
	}

	return message, true
}
