package auth

import (
	"strings"

	"pr-activity-service/internal/domain"
)

const (
	fineGrainedPrefix = "github_pat_"
	bearerPrefix      = "Bearer "
)

// Префиксы classic-токенов: PAT, OAuth, user, server, refresh.
var classicPrefixes = []string{"ghp_", "gho_", "ghu_", "ghs_", "ghr_"}

// TokenKindOf определяет форму токена. Второе значение false, если форма неверна.
func TokenKindOf(token string) (domain.TokenKind, bool) {
	if strings.HasPrefix(token, fineGrainedPrefix) {
		if len(token) >= 80 && len(token) <= 100 {
			return domain.TokenFineGrained, true
		}
		return "", false
	}
	for _, prefix := range classicPrefixes {
		if strings.HasPrefix(token, prefix) {
			if len(token) >= 35 && len(token) <= 50 {
				return domain.TokenClassic, true
			}
			return "", false
		}
	}
	return "", false
}

// ValidateToken проверяет префикс и длину токена.
func ValidateToken(token string) bool {
	_, ok := TokenKindOf(token)
	return ok
}

// BearerToken извлекает токен из значения заголовка Authorization.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}

// Resolver реализует domain.CredentialResolver.
type Resolver struct {
	serverToken string
}

// NewResolver создает Resolver с уже расшифрованным серверным токеном (может быть пустым).
func NewResolver(serverToken string) *Resolver {
	return &Resolver{serverToken: serverToken}
}

// Resolve возвращает первый валидный токен: клиентский, из заголовка, серверный.
// Невалидный кандидат отбрасывается, и проверяется следующий уровень.
func (r *Resolver) Resolve(clientToken, authorizationHeader string) (domain.Credential, bool) {
	if kind, ok := TokenKindOf(clientToken); ok {
		return domain.Credential{Token: clientToken, Kind: kind, Source: domain.TokenFromClient}, true
	}

	if token, ok := BearerToken(authorizationHeader); ok {
		if kind, ok := TokenKindOf(token); ok {
			return domain.Credential{Token: token, Kind: kind, Source: domain.TokenFromHeader}, true
		}
	}

	if kind, ok := TokenKindOf(r.serverToken); ok {
		return domain.Credential{Token: r.serverToken, Kind: kind, Source: domain.TokenFromServer}, true
	}

	return domain.Credential{}, false
}

var _ domain.CredentialResolver = (*Resolver)(nil)
