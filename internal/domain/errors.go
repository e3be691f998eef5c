package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	// Validation errors
	ErrInvalidUser       = errors.New("invalid user login")
	ErrInvalidRepository = errors.New("invalid repository, expected owner/repository")

	// Remote source errors
	ErrAuthenticationFailed = errors.New("remote authentication failed")
	ErrInsufficientScope    = errors.New("token lacks required scope")
	ErrForbidden            = errors.New("remote access forbidden")
	ErrNotFound             = errors.New("repository or user not found")
	ErrRateLimitExceeded    = errors.New("remote rate limit exceeded")
	ErrRemoteTimeout        = errors.New("remote request timed out")
	ErrRemote               = errors.New("remote API error")

	// Cache errors
	ErrCacheUnavailable = errors.New("cache unavailable")

	// Admission errors
	ErrAdmissionDenied = errors.New("too many requests")
)

// RemoteError - ошибка удаленного API с HTTP статусом.
// Kind - одна из ошибок таксономии, доступная через errors.Is.
type RemoteError struct {
	Kind    error
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("%v (status %d): %s", e.Kind, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}

// HTTPError для ответа клиенту
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Маппинг domain ошибок в HTTP ошибки. Порядок важен: проверяется через errors.Is.
var ErrorMapping = []struct {
	Err  error
	HTTP HTTPError
}{
	{ErrInvalidUser, HTTPError{Code: "INVALID_USER", Message: "invalid GitHub user name", Status: http.StatusBadRequest}},
	{ErrInvalidRepository, HTTPError{Code: "INVALID_REPOSITORY", Message: "repository must be in owner/repository form", Status: http.StatusBadRequest}},
	{ErrAdmissionDenied, HTTPError{Code: "TOO_MANY_REQUESTS", Message: "request limit reached, retry later", Status: http.StatusTooManyRequests}},
	{ErrRateLimitExceeded, HTTPError{Code: "RATE_LIMITED", Message: "GitHub API rate limit exceeded, retry later", Status: http.StatusTooManyRequests}},
	{ErrAuthenticationFailed, HTTPError{Code: "AUTH_FAILED", Message: "GitHub authentication failed, check your token", Status: http.StatusUnauthorized}},
	{ErrInsufficientScope, HTTPError{Code: "INSUFFICIENT_SCOPE", Message: "token lacks Contents, Metadata or Pull requests read permission", Status: http.StatusForbidden}},
	{ErrForbidden, HTTPError{Code: "FORBIDDEN", Message: "GitHub API access forbidden, check token permissions", Status: http.StatusForbidden}},
	{ErrNotFound, HTTPError{Code: "NOT_FOUND", Message: "repository or user not found", Status: http.StatusNotFound}},
	{ErrRemoteTimeout, HTTPError{Code: "REMOTE_TIMEOUT", Message: "GitHub API did not respond in time", Status: http.StatusGatewayTimeout}},
	{ErrRemote, HTTPError{Code: "REMOTE_ERROR", Message: "failed to fetch data from GitHub API", Status: http.StatusBadGateway}},
	{ErrCacheUnavailable, HTTPError{Code: "CACHE_UNAVAILABLE", Message: "cache storage unavailable", Status: http.StatusServiceUnavailable}},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for _, m := range ErrorMapping {
		if errors.Is(err, m.Err) {
			return m.HTTP, true
		}
	}
	return HTTPError{}, false
}
