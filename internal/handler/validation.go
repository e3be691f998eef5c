package handler

import (
	"regexp"
	"strings"

	"pr-activity-service/internal/domain"
)

const (
	maxUsernameLength = 39
	maxRepoNameLength = 100
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	repoNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	unsafeChars     = strings.NewReplacer("<", "", ">", "", `"`, "", `\`, "", "&", "")
)

// sanitizeInput обрезает пробелы и удаляет символы, опасные для HTML.
func sanitizeInput(input string) string {
	return unsafeChars.Replace(strings.TrimSpace(input))
}

// validateUsername проверяет логин по правилам GitHub.
func validateUsername(username string) bool {
	if username == "" || len(username) > maxUsernameLength {
		return false
	}
	if strings.HasPrefix(username, "-") || strings.HasSuffix(username, "-") || strings.Contains(username, "--") {
		return false
	}
	return usernamePattern.MatchString(username)
}

// validateRepository проверяет строку вида owner/repo.
func validateRepository(repo string) bool {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || strings.Contains(name, "/") {
		return false
	}
	if !validateUsername(owner) {
		return false
	}
	if name == "" || len(name) > maxRepoNameLength {
		return false
	}
	return repoNamePattern.MatchString(name)
}

// validateQuery очищает и проверяет пользователя и репозиторий.
func validateQuery(rawUser, rawRepo string) (string, string, error) {
	user := sanitizeInput(rawUser)
	repo := sanitizeInput(rawRepo)

	if !validateUsername(user) {
		return "", "", domain.ErrInvalidUser
	}
	if !validateRepository(repo) {
		return "", "", domain.ErrInvalidRepository
	}
	return user, repo, nil
}
