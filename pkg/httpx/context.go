package httpx

import (
	"context"

	"github.com/foliohq/folio/pkg/identity"
)

type ctxKey string

const (
	CtxKeyUserID      ctxKey = "user_id" // external subject id of the caller
	CtxKeyIdentity    ctxKey = "identity"
	CtxKeyPermissions ctxKey = "permissions"
)

// ContextWithIdentity stores a verified identity on the context.
func ContextWithIdentity(ctx context.Context, id identity.Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, id.SubjectID)
	return context.WithValue(ctx, CtxKeyIdentity, id)
}

// IdentityFromContext returns the verified identity, if any.
func IdentityFromContext(ctx context.Context) (identity.Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(identity.Identity)
	return id, ok
}

// ContextWithPermissions stores the caller's resolved permission set. This
// happens after account resolution, not at token verification.
func ContextWithPermissions(ctx context.Context, perms []string) context.Context {
	return context.WithValue(ctx, CtxKeyPermissions, perms)
}

func permissionsFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyPermissions).([]string); ok {
		return v
	}
	return nil
}
