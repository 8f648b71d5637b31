package service

import (
	"context"
	"testing"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesBuiltinRoles(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	roles, err := st.Roles().ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 4)

	super, err := st.Roles().GetRoleByName(ctx, domain.RoleSuperadmin)
	require.NoError(t, err)
	require.True(t, super.HasPermission(domain.PermManageAccounts))
	require.True(t, super.HasPermission(domain.PermSystemConfig))

	editor, err := st.Roles().GetRoleByName(ctx, domain.RoleEditor)
	require.NoError(t, err)
	require.True(t, editor.HasPermission(domain.PermManageProjects))
	require.False(t, editor.HasPermission(domain.PermManageSettings))
	require.False(t, editor.HasPermission(domain.PermManageAccounts))

	viewer, err := st.Roles().GetRoleByName(ctx, domain.RoleViewer)
	require.NoError(t, err)
	require.True(t, viewer.HasPermission(domain.PermViewProjects))
	require.False(t, viewer.HasPermission(domain.PermManageProjects))
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &RolesService{Store: st}

	before, err := st.Roles().GetRoleByName(ctx, domain.RoleAdmin)
	require.NoError(t, err)

	// Seeding again must not duplicate roles or change their identity.
	require.NoError(t, svc.Seed(ctx))

	roles, err := st.Roles().ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 4)

	after, err := st.Roles().GetRoleByName(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, before.ID, after.ID)
	require.ElementsMatch(t, before.Permissions, after.Permissions)
}

func TestSeedRefreshesDriftedDefinitions(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &RolesService{Store: st}

	editor, err := st.Roles().GetRoleByName(ctx, domain.RoleEditor)
	require.NoError(t, err)

	// Drift the stored definition, then reseed.
	require.NoError(t, st.Roles().UpdateRoleDefinition(ctx, editor.ID, "drifted", []domain.Permission{domain.PermViewProjects}))
	require.NoError(t, svc.Seed(ctx))

	refreshed, err := st.Roles().GetRoleByName(ctx, domain.RoleEditor)
	require.NoError(t, err)
	require.Equal(t, "Can edit portfolio content but cannot manage admin users", refreshed.Description)
	require.True(t, refreshed.HasPermission(domain.PermManageProjects))
}

func TestListVisible(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &RolesService{Store: st}

	admin := createAccount(t, st, "admin@example.com", domain.RoleAdmin)
	editor := createAccount(t, st, "editor@example.com", domain.RoleEditor)

	t.Run("admins see the whole registry", func(t *testing.T) {
		roles, err := svc.ListVisible(ctx, admin)
		require.NoError(t, err)
		require.Len(t, roles, 4)
	})

	t.Run("editors see only their own role", func(t *testing.T) {
		roles, err := svc.ListVisible(ctx, editor)
		require.NoError(t, err)
		require.Len(t, roles, 1)
		require.Equal(t, domain.RoleEditor, roles[0].Name)
	})
}
