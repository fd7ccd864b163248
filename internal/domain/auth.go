package domain

import "time"

// TokenIssuer issues API tokens (e.g. JWT) for a subject.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
