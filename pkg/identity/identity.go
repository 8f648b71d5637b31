// Package identity verifies externally issued bearer tokens and extracts the
// caller's identity from them. The service never issues credentials of its
// own; an upstream identity provider authenticates users and this package
// checks the proof it hands out.
package identity

import (
	"context"
	"errors"
)

// Identity is the verified external identity of a request. SubjectID is the
// provider's stable subject identifier; Email and DisplayName are best-effort
// profile claims used when provisioning a local account.
type Identity struct {
	SubjectID   string
	Email       string
	DisplayName string
}

// Verifier checks a bearer token and returns the identity it attests to.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

var (
	ErrMalformed   = errors.New("identity: malformed token")
	ErrUnknownKID  = errors.New("identity: unknown kid")
	ErrInvalidSig  = errors.New("identity: invalid signature")
	ErrIssuer      = errors.New("identity: issuer mismatch")
	ErrAudience    = errors.New("identity: audience mismatch")
	ErrExpired     = errors.New("identity: token expired")
	ErrNoSubject   = errors.New("identity: token has no subject")
	ErrNoKeys      = errors.New("identity: no verification keys loaded")
)
