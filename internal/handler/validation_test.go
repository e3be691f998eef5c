package handler

import (
	"strings"
	"testing"

	"pr-activity-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		username string
		valid    bool
	}{
		{"octocat", true},
		{"a", true},
		{"my-user-1", true},
		{strings.Repeat("a", 39), true},
		{strings.Repeat("a", 40), false},
		{"", false},
		{"-octocat", false},
		{"octocat-", false},
		{"octo--cat", false},
		{"octo_cat", false},
		{"octo cat", false},
	}

	for _, tc := range testCases {
		t.Run(tc.username, func(t *testing.T) {
			assert.Equal(t, tc.valid, validateUsername(tc.username))
		})
	}
}

func TestValidateRepository(t *testing.T) {
	testCases := []struct {
		repo  string
		valid bool
	}{
		{"octocat/hello-world", true},
		{"acme/api.v2_beta", true},
		{"acme/" + strings.Repeat("r", 100), true},
		{"acme/" + strings.Repeat("r", 101), false},
		{"acme", false},
		{"acme/", false},
		{"/api", false},
		{"acme/api/extra", false},
		{"-acme/api", false},
		{"acme/my api", false},
	}

	for _, tc := range testCases {
		t.Run(tc.repo, func(t *testing.T) {
			assert.Equal(t, tc.valid, validateRepository(tc.repo))
		})
	}
}

func TestValidateQuery(t *testing.T) {
	user, repo, err := validateQuery("  octocat ", "<octocat/hello-world>")
	assert.NoError(t, err)
	assert.Equal(t, "octocat", user)
	assert.Equal(t, "octocat/hello-world", repo)

	_, _, err = validateQuery("bad user", "octocat/hello-world")
	assert.ErrorIs(t, err, domain.ErrInvalidUser)

	_, _, err = validateQuery("octocat", "hello-world")
	assert.ErrorIs(t, err, domain.ErrInvalidRepository)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", sanitizeInput(` <script>alert(1)</script> `))
	assert.Equal(t, "a  b", sanitizeInput(`a "&" b`))
}
