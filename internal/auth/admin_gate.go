package auth

import (
	"crypto/subtle"

	apperrors "retail/internal/errors"
)

// AdminKeyHeader carries the shared admin secret on privileged requests.
const AdminKeyHeader = "X-Admin-Key"

type AdminGate struct {
	key string
}

func NewAdminGate(key string) *AdminGate {
	return &AdminGate{key: key}
}

// Authorize fails with an UnauthorizedError unless supplied matches the
// configured key exactly. An empty key never matches.
func (g *AdminGate) Authorize(supplied string) error {
	if supplied == "" || g.key == "" {
		return apperrors.NewUnauthorizedError("Unauthorized: invalid admin key")
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(g.key)) != 1 {
		return apperrors.NewUnauthorizedError("Unauthorized: invalid admin key")
	}
	return nil
}
