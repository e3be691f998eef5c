package domain

// TokenKind - форма токена доступа.
type TokenKind string

const (
	TokenClassic     TokenKind = "classic"
	TokenFineGrained TokenKind = "fine-grained"
)

// TokenSource - уровень, из которого получен токен.
type TokenSource string

const (
	TokenFromClient TokenSource = "client"
	TokenFromHeader TokenSource = "header"
	TokenFromServer TokenSource = "server"
)

// Credential - bearer-токен для одного обращения к удаленному API.
type Credential struct {
	Token  string
	Kind   TokenKind
	Source TokenSource
}

// CredentialResolver выбирает токен по приоритету: клиент, заголовок, сервер.
type CredentialResolver interface {
	Resolve(clientToken, authorizationHeader string) (Credential, bool)
}
