package domain_test

import (
	"fmt"
	"net/http"
	"testing"

	"pr-activity-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{name: "Rate limit", err: &domain.RemoteError{Kind: domain.ErrRateLimitExceeded, Status: 403}, code: "RATE_LIMITED", status: http.StatusTooManyRequests},
		{name: "Auth", err: &domain.RemoteError{Kind: domain.ErrAuthenticationFailed, Status: 401}, code: "AUTH_FAILED", status: http.StatusUnauthorized},
		{name: "Scope", err: &domain.RemoteError{Kind: domain.ErrInsufficientScope, Status: 403}, code: "INSUFFICIENT_SCOPE", status: http.StatusForbidden},
		{name: "Not found", err: &domain.RemoteError{Kind: domain.ErrNotFound, Status: 404}, code: "NOT_FOUND", status: http.StatusNotFound},
		{name: "Timeout", err: &domain.RemoteError{Kind: domain.ErrRemoteTimeout}, code: "REMOTE_TIMEOUT", status: http.StatusGatewayTimeout},
		{name: "Remote", err: &domain.RemoteError{Kind: domain.ErrRemote, Status: 500}, code: "REMOTE_ERROR", status: http.StatusBadGateway},
		{name: "Wrapped cache", err: fmt.Errorf("%w: disk full", domain.ErrCacheUnavailable), code: "CACHE_UNAVAILABLE", status: http.StatusServiceUnavailable},
		{name: "Admission", err: domain.ErrAdmissionDenied, code: "TOO_MANY_REQUESTS", status: http.StatusTooManyRequests},
		{name: "Invalid repository", err: domain.ErrInvalidRepository, code: "INVALID_REPOSITORY", status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr, ok := domain.ToHTTPError(tc.err)

			assert.True(t, ok)
			assert.Equal(t, tc.code, httpErr.Code)
			assert.Equal(t, tc.status, httpErr.Status)
		})
	}
}

func TestToHTTPError_Unknown(t *testing.T) {
	_, ok := domain.ToHTTPError(fmt.Errorf("boom"))

	assert.False(t, ok)
}

func TestRemoteError_Error(t *testing.T) {
	err := &domain.RemoteError{Kind: domain.ErrRemote, Status: 502, Message: "Bad Gateway"}

	assert.Equal(t, "remote API error (status 502): Bad Gateway", err.Error())
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
