package identity

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://idp.example.com"
	testAudience = "portfolio-api"
	testKid      = "test-key-1"
)

func newTestKeys(t *testing.T) (ed25519.PrivateKey, *KeySet) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, keys.AddJWK(NewEd25519JWK(testKid, pub)))
	return priv, keys
}

func signTestToken(t *testing.T, priv ed25519.PrivateKey, mutate func(*Claims)) string {
	t.Helper()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "subject-123",
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "jane@example.com",
		Name:  "Jane Doe",
	}
	if mutate != nil {
		mutate(claims)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = testKid

	signed, err := token.SignedString(priv)
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_Verify(t *testing.T) {
	priv, keys := newTestKeys(t)
	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})

	id, err := v.Verify(context.Background(), signTestToken(t, priv, nil))
	require.NoError(t, err)
	require.Equal(t, "subject-123", id.SubjectID)
	require.Equal(t, "jane@example.com", id.Email)
	require.Equal(t, "Jane Doe", id.DisplayName)
}

func TestJWTVerifier_PreferredUsernameFallback(t *testing.T) {
	priv, keys := newTestKeys(t)
	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})

	token := signTestToken(t, priv, func(c *Claims) {
		c.Name = ""
		c.PreferredUsername = "jane.d"
	})

	id, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "jane.d", id.DisplayName)
}

func TestJWTVerifier_Expired(t *testing.T) {
	priv, keys := newTestKeys(t)
	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})

	token := signTestToken(t, priv, func(c *Claims) {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	})

	_, err := v.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestJWTVerifier_IssuerMismatch(t *testing.T) {
	priv, keys := newTestKeys(t)
	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})

	token := signTestToken(t, priv, func(c *Claims) {
		c.Issuer = "https://evil.example.com"
	})

	_, err := v.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestJWTVerifier_AudienceMismatch(t *testing.T) {
	priv, keys := newTestKeys(t)
	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})

	token := signTestToken(t, priv, func(c *Claims) {
		c.Audience = jwt.ClaimStrings{"other-api"}
	})

	_, err := v.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrAudience)
}

func TestJWTVerifier_MissingSubject(t *testing.T) {
	priv, keys := newTestKeys(t)
	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})

	token := signTestToken(t, priv, func(c *Claims) {
		c.Subject = ""
	})

	_, err := v.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrNoSubject)
}

func TestJWTVerifier_UnknownKID(t *testing.T) {
	priv, _ := newTestKeys(t)

	// Fresh keyset without the signing key registered
	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	keys := NewKeySet()
	require.NoError(t, keys.AddJWK(NewEd25519JWK("other-kid", otherPub)))

	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})
	_, err = v.Verify(context.Background(), signTestToken(t, priv, nil))
	require.Error(t, err)
}

func TestJWTVerifier_WrongKey(t *testing.T) {
	priv, _ := newTestKeys(t)

	// Same kid, different key material
	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	keys := NewKeySet()
	require.NoError(t, keys.AddJWK(NewEd25519JWK(testKid, otherPub)))

	v := NewJWTVerifier(keys, testIssuer, []string{testAudience})
	_, err = v.Verify(context.Background(), signTestToken(t, priv, nil))
	require.Error(t, err)
}

func TestJWTVerifier_EmptyKeySet(t *testing.T) {
	priv, _ := newTestKeys(t)

	v := NewJWTVerifier(NewKeySet(), testIssuer, []string{testAudience})
	_, err := v.Verify(context.Background(), signTestToken(t, priv, nil))
	require.ErrorIs(t, err, ErrNoKeys)
}

func TestJWKSProvider_Fetch(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"keys":[{"kty":"OKP","use":"sig","alg":"EdDSA","kid":"remote-1","crv":"Ed25519","x":"` +
			NewEd25519JWK("remote-1", pub).X + `"}]}`))
	}))
	defer srv.Close()

	keys := NewKeySet()
	provider := NewJWKSProvider(srv.URL, keys, 0)
	require.NoError(t, provider.Fetch(context.Background()))
	require.True(t, keys.IsReady())

	_, err = keys.Get("remote-1")
	require.NoError(t, err)
}

func TestJWKSProvider_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := NewJWKSProvider(srv.URL, NewKeySet(), 0)
	require.Error(t, provider.Fetch(context.Background()))
}
