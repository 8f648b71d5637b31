package api_test

import (
	"testing"

	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdate(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")

	name := "Jane D."
	me, err := super.UpdateMe(ctx, foliosdk.UpdateProfileRequest{DisplayName: &name})
	require.NoError(t, err)
	require.Equal(t, "Jane D.", me.DisplayName)
	require.Equal(t, "super@example.com", me.Email, "omitted fields stay untouched")
}

func TestAccountAdministration(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")
	admin := inviteAs(t, srv, super, "admin", "subject-admin", "admin@example.com")

	accounts, err := super.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	var adminID string
	for _, a := range accounts {
		if a.Email == "admin@example.com" {
			adminID = a.ID
		}
	}
	require.NotEmpty(t, adminID)

	// Plain admins see a directory containing only themselves.
	own, err := admin.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, "admin@example.com", own[0].Email)

	// Deactivation locks the account out.
	var apiErr *foliosdk.APIError
	updated, err := super.SetAccountActive(ctx, adminID, false)
	require.NoError(t, err)
	require.False(t, updated.Active)

	_, err = admin.GetMe(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)

	// Reactivation restores access.
	_, err = super.SetAccountActive(ctx, adminID, true)
	require.NoError(t, err)
	_, err = admin.GetMe(ctx)
	require.NoError(t, err)
}

func TestAccountDeletionGuards(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")
	_ = inviteAs(t, srv, super, "admin", "subject-admin", "admin@example.com")
	_ = inviteAs(t, srv, super, "superadmin", "subject-peer", "peer@example.com")

	accounts, err := super.ListAccounts(ctx)
	require.NoError(t, err)

	byEmail := map[string]string{}
	for _, a := range accounts {
		byEmail[a.Email] = a.ID
	}

	var apiErr *foliosdk.APIError

	// Self-deletion is refused.
	err = super.DeleteAccount(ctx, byEmail["super@example.com"])
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)

	// So is deleting a fellow superadmin.
	err = super.DeleteAccount(ctx, byEmail["peer@example.com"])
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)

	// Deleting a regular admin works.
	require.NoError(t, super.DeleteAccount(ctx, byEmail["admin@example.com"]))

	accounts, err = super.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
}

func TestRoleListing(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")
	editor := inviteAs(t, srv, super, "editor", "subject-editor", "editor@example.com")

	roles, err := super.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 4)

	// Non-admin callers only see their own role.
	roles, err = editor.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, "editor", roles[0].Name)
}
