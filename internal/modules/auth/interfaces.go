package auth

import "time"

// TokenIssuer signs operator access tokens.
type TokenIssuer interface {
	GenerateToken(operator, role string) (string, error)
	TTL() time.Duration
}
