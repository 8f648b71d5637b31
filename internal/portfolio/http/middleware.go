package http

import (
	"context"
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
	"github.com/foliohq/folio/pkg/slogx"
)

type accountCtxKey struct{}

// accountFromContext returns the resolved admin account placed on the
// context by AccountMiddleware.
func accountFromContext(ctx context.Context) (domain.AdminAccount, bool) {
	a, ok := ctx.Value(accountCtxKey{}).(domain.AdminAccount)
	return a, ok
}

// AccountMiddleware maps the verified identity (set by AuthnMiddleware) to a
// local admin account, provisioning one on first login. It attaches the
// account and its role's permission set to the context and stamps last_login.
// Deactivated accounts are rejected here, so every admin handler downstream
// can assume an active caller.
func AccountMiddleware(directory *service.DirectoryService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			ident, ok := httpx.IdentityFromContext(ctx)
			if !ok {
				foliosdk.ErrInvalidToken.WriteError(w)
				return
			}

			account, err := directory.ProvisionOrLink(ctx, ident)
			if err != nil {
				if err == service.ErrAccountInactive {
					foliosdk.NewAPIError(http.StatusForbidden, foliosdk.ErrorCodeForbidden, "account is deactivated").WriteError(w)
					return
				}
				log.Error("failed to resolve account", "error", err)
				foliosdk.ErrServerError.WriteError(w)
				return
			}

			directory.TouchLogin(ctx, account.ID)

			perms := make([]string, len(account.Role.Permissions))
			for i, p := range account.Role.Permissions {
				perms[i] = string(p)
			}

			ctx = context.WithValue(ctx, accountCtxKey{}, account)
			ctx = httpx.ContextWithPermissions(ctx, perms)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
