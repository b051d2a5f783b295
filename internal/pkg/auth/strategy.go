package auth

import (
	"time"

	"github.com/shopperhq/shopper/internal/domain/model"
)

// Identity is the authenticated principal carried by a token. Tokens are
// issued by the external auth service sharing the same secret.
type Identity struct {
	UserID int64
	Role   model.Role
}

// Strategy verifies and issues auth tokens.
type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
