package api_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	httpapi "github.com/foliohq/folio/internal/portfolio/http"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/internal/portfolio/store/drivers/sqlite"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/identity"
)

const (
	testIssuer = "https://idp.example.com"
	testKid    = "e2e-key-1"
)

// testServer is an in-process instance of the full HTTP stack backed by an
// in-memory database, plus a signer that mints tokens the way the external
// identity provider would.
type testServer struct {
	Client *foliosdk.Client

	priv ed25519.PrivateKey
}

// Token signs an access token for the given identity.
func (s *testServer) Token(t *testing.T, subject, email, name string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"iss":   testIssuer,
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = testKid

	signed, err := token.SignedString(s.priv)
	require.NoError(t, err)
	return signed
}

// As returns an SDK client authenticated as the given identity.
func (s *testServer) As(t *testing.T, subject, email, name string) *foliosdk.Client {
	t.Helper()
	return s.Client.WithToken(s.Token(t, subject, email, name))
}

// bootstrapSuperadmin logs in as the first identity the server has ever
// seen, which provisions it with the superadmin role.
func bootstrapSuperadmin(t *testing.T, srv *testServer, subject, email string) *foliosdk.Client {
	t.Helper()

	c := srv.As(t, subject, email, "")
	me, err := c.GetMe(context.Background())
	require.NoError(t, err)
	require.Equal(t, "superadmin", me.Role, "bootstrap requires an empty directory")
	return c
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := identity.NewKeySet()
	require.NoError(t, keys.AddJWK(identity.NewEd25519JWK(testKid, pub)))
	verifier := identity.NewJWTVerifier(keys, testIssuer, nil)

	rolesService := &service.RolesService{Store: st}
	require.NoError(t, rolesService.Seed(context.Background()))

	router := httpapi.NewRouter(keys, verifier, "test", st, slog.Default())
	router.RolesService = rolesService
	router.DirectoryService = &service.DirectoryService{Store: st}
	router.InviteService = &service.InviteService{Store: st}
	router.ContentService = &service.ContentService{Store: st}
	router.ContactService = &service.ContactService{Store: st}
	router.AnalyticsService = &service.AnalyticsService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{
		Client: foliosdk.NewClient(server.URL),
		priv:   priv,
	}
}
