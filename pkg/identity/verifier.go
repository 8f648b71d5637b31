package identity

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims we care about. Providers differ on where they
// put the display name, so both "name" and "preferred_username" are read.
type Claims struct {
	jwt.RegisteredClaims

	Email             string `json:"email,omitempty"`
	Name              string `json:"name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}

// validAlgs are the signature algorithms accepted from the provider.
var validAlgs = []string{
	jwt.SigningMethodRS256.Alg(),
	jwt.SigningMethodES256.Alg(),
	jwt.SigningMethodEdDSA.Alg(),
}

// JWTVerifier validates provider-signed JWTs against a KeySet and enforces
// issuer and audience expectations.
type JWTVerifier struct {
	keys   *KeySet
	issuer string
	aud    []string
}

// NewJWTVerifier creates a verifier over the given KeySet. Empty issuer or
// audience means "don't enforce".
func NewJWTVerifier(keys *KeySet, issuer string, aud []string) *JWTVerifier {
	return &JWTVerifier{keys: keys, issuer: issuer, aud: aud}
}

// Verify validates the token and returns the Identity it attests to.
func (v *JWTVerifier) Verify(ctx context.Context, tokenStr string) (Identity, error) {
	if !v.keys.IsReady() {
		return Identity{}, ErrNoKeys
	}

	parser := jwt.NewParser(jwt.WithValidMethods(validAlgs))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		// Need the kid to know which key to use
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("identity: missing kid")
		}

		pub, err := v.keys.Get(kid)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKID, kid)
		}
		return pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrInvalidSig
		case errors.Is(err, ErrUnknownKID):
			return Identity{}, ErrUnknownKID
		default:
			return Identity{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrMalformed
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Identity{}, ErrIssuer
	}
	if len(v.aud) > 0 && !audienceMatches(claims.Audience, v.aud) {
		return Identity{}, ErrAudience
	}
	if claims.Subject == "" {
		return Identity{}, ErrNoSubject
	}

	name := claims.Name
	if name == "" {
		name = claims.PreferredUsername
	}

	return Identity{
		SubjectID:   claims.Subject,
		Email:       claims.Email,
		DisplayName: name,
	}, nil
}

// audienceMatches reports whether at least one expected audience is present.
func audienceMatches(have jwt.ClaimStrings, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
