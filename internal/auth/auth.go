package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is what a verified bearer token says about its holder. Email,
// Name and Role may be empty for identity-provider tokens.
type Identity struct {
	UID   string
	Email string
	Name  string
	Role  string
}

// Verifier turns a bearer token into an Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
