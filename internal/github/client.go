package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pr-activity-service/internal/domain"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	AcceptHeader = "application/vnd.github.v3+json"
	UserAgent    = "pr-activity-service"
	PerPage      = 100

	rateLimitRemainingHeader = "X-RateLimit-Remaining"
	maxErrorBody             = 64 << 10
)

// Options - настройки клиента удаленного API.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	RPS      float64 // 0 - без ограничения
	MaxPages int
	// HTTPClient можно подменить в тестах
	HTTPClient *http.Client
}

// Client реализует domain.PRSource поверх GitHub REST API v3.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxPages   int
	limiter    *rate.Limiter
	credential *domain.Credential
	logger     *logrus.Logger
}

// NewClient создает клиент без учетных данных.
func NewClient(opts Options, logger *logrus.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = 50
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), 1)
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
		timeout:    timeout,
		maxPages:   maxPages,
		limiter:    limiter,
		logger:     logger,
	}
}

// WithCredential возвращает копию клиента, подписывающую запросы токеном.
// nil означает анонимные запросы.
func (c *Client) WithCredential(cred *domain.Credential) *Client {
	cp := *c
	cp.credential = cred
	return &cp
}

// ListPullRequests возвращает все PR репозитория (state=all), постранично до пустой страницы.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string) ([]*domain.PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls", url.PathEscape(owner), url.PathEscape(repo))

	result := make([]*domain.PullRequest, 0)
	err := c.paginate(ctx, path, url.Values{"state": {"all"}}, func(raw json.RawMessage) (int, error) {
		var page []PullRequestPayload
		if err := json.Unmarshal(raw, &page); err != nil {
			return 0, err
		}
		for _, p := range page {
			result = append(result, toDomainPullRequest(p))
		}
		return len(page), nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListReviews возвращает ревью PR в порядке ответа API.
func (c *Client) ListReviews(ctx context.Context, owner, repo string, number int) ([]*domain.Review, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d/reviews", url.PathEscape(owner), url.PathEscape(repo), number)

	result := make([]*domain.Review, 0)
	err := c.paginate(ctx, path, url.Values{}, func(raw json.RawMessage) (int, error) {
		var page []ReviewPayload
		if err := json.Unmarshal(raw, &page); err != nil {
			return 0, err
		}
		for _, p := range page {
			if r, ok := toDomainReview(p); ok {
				result = append(result, r)
			}
		}
		return len(page), nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// paginate запрашивает страницы 1..maxPages, пока не придет пустая.
func (c *Client) paginate(ctx context.Context, path string, query url.Values, consume func(json.RawMessage) (int, error)) error {
	for page := 1; page <= c.maxPages; page++ {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("per_page", strconv.Itoa(PerPage))
		q.Set("page", strconv.Itoa(page))

		var raw json.RawMessage
		if err := c.get(ctx, path, q, &raw); err != nil {
			return err
		}

		n, err := consume(raw)
		if err != nil {
			return &domain.RemoteError{Kind: domain.ErrRemote, Status: http.StatusOK, Message: "malformed response: " + err.Error()}
		}
		if n == 0 {
			return nil
		}
	}

	c.logger.WithFields(logrus.Fields{
		"path":      path,
		"max_pages": c.maxPages,
	}).Warn("Page limit reached, result truncated")
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return transportError(err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", UserAgent)
	if c.credential != nil {
		req.Header.Set("Authorization", "Bearer "+c.credential.Token)
	}

	c.logAccess(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return &domain.RemoteError{Kind: domain.ErrRemoteTimeout, Message: err.Error()}
		}
		return &domain.RemoteError{Kind: domain.ErrRemote, Status: resp.StatusCode, Message: "failed to decode response: " + err.Error()}
	}
	return nil
}

func (c *Client) logAccess(req *http.Request) {
	source := "none"
	if c.credential != nil {
		source = string(c.credential.Source)
	}
	c.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.URL.Path,
		"query":  req.URL.RawQuery,
		"auth":   c.credential != nil,
		"source": source,
	}).Debug("GitHub API request")
}

// mapHTTPError переводит не-2xx ответ в таксономию ошибок.
func mapHTTPError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := errorMessage(resp, body)

	kind := domain.ErrRemote
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = domain.ErrAuthenticationFailed
	case http.StatusForbidden:
		switch {
		case resp.Header.Get(rateLimitRemainingHeader) == "0":
			kind = domain.ErrRateLimitExceeded
		case strings.Contains(strings.ToLower(string(body)), "scope"):
			kind = domain.ErrInsufficientScope
		default:
			kind = domain.ErrForbidden
		}
	case http.StatusNotFound:
		kind = domain.ErrNotFound
	}

	return &domain.RemoteError{Kind: kind, Status: resp.StatusCode, Message: message}
}

// errorMessage извлекает message из JSON тела ошибки через go-gh.
func errorMessage(resp *http.Response, body []byte) string {
	resp.Body = io.NopCloser(bytes.NewReader(body))

	parsed := api.HandleHTTPError(resp)
	var httpErr *api.HTTPError
	if errors.As(parsed, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return resp.Status
}

func transportError(err error) error {
	if isTimeout(err) {
		return &domain.RemoteError{Kind: domain.ErrRemoteTimeout, Message: err.Error()}
	}
	return &domain.RemoteError{Kind: domain.ErrRemote, Message: err.Error()}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

var _ domain.PRSource = (*Client)(nil)
