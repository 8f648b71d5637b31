package service

import (
	"context"
	"testing"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/internal/portfolio/store/drivers/sqlite"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore returns an in-memory store with migrations applied and the
// built-in roles seeded.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	roles := &RolesService{Store: st}
	require.NoError(t, roles.Seed(context.Background()))

	return st
}

// createAccount inserts an account holding the named role and returns it
// with the role joined.
func createAccount(t *testing.T, st store.Store, email string, roleName domain.RoleName) domain.AdminAccount {
	t.Helper()
	ctx := context.Background()

	role, err := st.Roles().GetRoleByName(ctx, roleName)
	require.NoError(t, err)

	account := domain.AdminAccount{
		ID:          idx.New().String(),
		SubjectID:   "sub-" + email,
		Email:       email,
		DisplayName: email,
		RoleID:      role.ID,
		Active:      true,
	}
	require.NoError(t, st.Accounts().CreateAccount(ctx, account))

	got, err := st.Accounts().GetAccountByID(ctx, account.ID)
	require.NoError(t, err)
	return got
}
