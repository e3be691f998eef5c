package auth_test

import (
	"strings"
	"testing"

	"pr-activity-service/internal/auth"
	"pr-activity-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clientToken = "ghp_" + strings.Repeat("c", 36)
	headerToken = "gho_" + strings.Repeat("h", 36)
	serverToken = "github_pat_" + strings.Repeat("s", 82)
)

func TestTokenKindOf(t *testing.T) {
	testCases := []struct {
		name  string
		token string
		kind  domain.TokenKind
		ok    bool
	}{
		{name: "Classic PAT", token: "ghp_" + strings.Repeat("a", 36), kind: domain.TokenClassic, ok: true},
		{name: "Classic OAuth", token: "gho_" + strings.Repeat("a", 31), kind: domain.TokenClassic, ok: true},
		{name: "Classic server", token: "ghs_" + strings.Repeat("a", 46), kind: domain.TokenClassic, ok: true},
		{name: "Classic too short", token: "ghp_" + strings.Repeat("a", 30), ok: false},
		{name: "Classic too long", token: "ghu_" + strings.Repeat("a", 47), ok: false},
		{name: "Fine-grained", token: "github_pat_" + strings.Repeat("a", 69), kind: domain.TokenFineGrained, ok: true},
		{name: "Fine-grained max", token: "github_pat_" + strings.Repeat("a", 89), kind: domain.TokenFineGrained, ok: true},
		{name: "Fine-grained too short", token: "github_pat_" + strings.Repeat("a", 40), ok: false},
		{name: "Unknown prefix", token: "xyz_" + strings.Repeat("a", 36), ok: false},
		{name: "Empty", token: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, ok := auth.TokenKindOf(tc.token)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.kind, kind)
			assert.Equal(t, tc.ok, auth.ValidateToken(tc.token))
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := auth.BearerToken("Bearer " + headerToken)
	assert.True(t, ok)
	assert.Equal(t, headerToken, token)

	_, ok = auth.BearerToken("token " + headerToken)
	assert.False(t, ok)

	_, ok = auth.BearerToken("")
	assert.False(t, ok)
}

func TestResolver_Precedence(t *testing.T) {
	testCases := []struct {
		name   string
		server string
		client string
		header string
		token  string
		source domain.TokenSource
		ok     bool
	}{
		{name: "Client beats header and server", server: serverToken, client: clientToken, header: "Bearer " + headerToken, token: clientToken, source: domain.TokenFromClient, ok: true},
		{name: "Header beats server", server: serverToken, header: "Bearer " + headerToken, token: headerToken, source: domain.TokenFromHeader, ok: true},
		{name: "Server fallback", server: serverToken, token: serverToken, source: domain.TokenFromServer, ok: true},
		{name: "Invalid client falls back to header", server: serverToken, client: "ghp_short", header: "Bearer " + headerToken, token: headerToken, source: domain.TokenFromHeader, ok: true},
		{name: "Invalid header falls back to server", server: serverToken, header: "Bearer nope", token: serverToken, source: domain.TokenFromServer, ok: true},
		{name: "Header without Bearer scheme ignored", server: serverToken, header: headerToken, token: serverToken, source: domain.TokenFromServer, ok: true},
		{name: "Nothing valid", server: "invalid", client: "bad", header: "Bearer bad", ok: false},
		{name: "Nothing at all", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := auth.NewResolver(tc.server)

			cred, ok := resolver.Resolve(tc.client, tc.header)

			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, cred.Token)
			assert.Equal(t, tc.source, cred.Source)
		})
	}
}
