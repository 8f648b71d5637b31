package service

import (
	"context"
	"testing"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/pkg/identity"
	"github.com/stretchr/testify/require"
)

func TestProvisionOrLink(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &DirectoryService{Store: st}

	ident := identity.Identity{
		SubjectID:   "subject-1",
		Email:       "jane@example.com",
		DisplayName: "Jane Doe",
	}

	t.Run("bootstraps the first account as superadmin", func(t *testing.T) {
		account, err := svc.ProvisionOrLink(ctx, ident)
		require.NoError(t, err)
		require.Equal(t, "jane@example.com", account.Email)
		require.Equal(t, "Jane Doe", account.DisplayName)
		require.Equal(t, domain.RoleSuperadmin, account.Role.Name)
		require.True(t, account.Active)
	})

	t.Run("is idempotent for a known subject", func(t *testing.T) {
		first, err := svc.ProvisionOrLink(ctx, ident)
		require.NoError(t, err)
		second, err := svc.ProvisionOrLink(ctx, ident)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		accounts, err := st.Accounts().ListAccounts(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
	})

	t.Run("re-links by email when the subject rotates", func(t *testing.T) {
		rotated := identity.Identity{
			SubjectID:   "subject-1-rotated",
			Email:       "jane@example.com",
			DisplayName: "Jane Doe",
		}
		account, err := svc.ProvisionOrLink(ctx, rotated)
		require.NoError(t, err)
		require.Equal(t, "subject-1-rotated", account.SubjectID)

		accounts, err := st.Accounts().ListAccounts(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
	})

	t.Run("later accounts default to the admin role", func(t *testing.T) {
		account, err := svc.ProvisionOrLink(ctx, identity.Identity{
			SubjectID: "subject-2",
			Email:     "sam@example.com",
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, account.Role.Name)
		require.Equal(t, "sam", account.DisplayName, "display name falls back to the email local part")
	})

	t.Run("rejects deactivated accounts", func(t *testing.T) {
		account, err := svc.ProvisionOrLink(ctx, identity.Identity{SubjectID: "subject-3", Email: "off@example.com"})
		require.NoError(t, err)
		require.NoError(t, st.Accounts().SetActive(ctx, account.ID, false))

		_, err = svc.ProvisionOrLink(ctx, identity.Identity{SubjectID: "subject-3", Email: "off@example.com"})
		require.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &DirectoryService{Store: st}

	account := createAccount(t, st, "me@example.com", domain.RoleAdmin)
	other := createAccount(t, st, "taken@example.com", domain.RoleAdmin)

	t.Run("applies a partial patch", func(t *testing.T) {
		name := "New Name"
		updated, err := svc.UpdateProfile(ctx, account.ID, domain.ProfilePatch{DisplayName: &name})
		require.NoError(t, err)
		require.Equal(t, "New Name", updated.DisplayName)
		require.Equal(t, "me@example.com", updated.Email)
	})

	t.Run("rejects an email already in use", func(t *testing.T) {
		email := other.Email
		_, err := svc.UpdateProfile(ctx, account.ID, domain.ProfilePatch{Email: &email})
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestSetActiveGuards(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &DirectoryService{Store: st}

	super := createAccount(t, st, "super@example.com", domain.RoleSuperadmin)
	target := createAccount(t, st, "target@example.com", domain.RoleEditor)

	t.Run("deactivates another account", func(t *testing.T) {
		updated, err := svc.SetActive(ctx, super, target.ID, false)
		require.NoError(t, err)
		require.False(t, updated.Active)
	})

	t.Run("reactivation works", func(t *testing.T) {
		updated, err := svc.SetActive(ctx, super, target.ID, true)
		require.NoError(t, err)
		require.True(t, updated.Active)
	})

	t.Run("self-deactivation is refused", func(t *testing.T) {
		_, err := svc.SetActive(ctx, super, super.ID, false)
		require.ErrorIs(t, err, ErrSelfDeactivation)
	})

	t.Run("self-reactivation is a no-op but allowed", func(t *testing.T) {
		updated, err := svc.SetActive(ctx, super, super.ID, true)
		require.NoError(t, err)
		require.True(t, updated.Active)
	})
}

func TestListVisibleAccounts(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &DirectoryService{Store: st}

	super := createAccount(t, st, "super@example.com", domain.RoleSuperadmin)
	editor := createAccount(t, st, "editor@example.com", domain.RoleEditor)
	createAccount(t, st, "viewer@example.com", domain.RoleViewer)

	t.Run("account managers see the whole directory", func(t *testing.T) {
		accounts, err := svc.ListVisible(ctx, super)
		require.NoError(t, err)
		require.Len(t, accounts, 3)
	})

	t.Run("other callers see only themselves", func(t *testing.T) {
		accounts, err := svc.ListVisible(ctx, editor)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		require.Equal(t, editor.ID, accounts[0].ID)
	})
}

func TestDeleteGuards(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &DirectoryService{Store: st}

	super := createAccount(t, st, "super@example.com", domain.RoleSuperadmin)
	peer := createAccount(t, st, "peer@example.com", domain.RoleSuperadmin)
	admin := createAccount(t, st, "admin@example.com", domain.RoleAdmin)
	editor := createAccount(t, st, "editor@example.com", domain.RoleEditor)

	t.Run("non-superadmins cannot delete", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, admin, editor.ID), ErrSuperadminRequired)
	})

	t.Run("self-deletion is refused", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, super, super.ID), ErrSelfDeletion)
	})

	t.Run("peer superadmins are protected", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, super, peer.ID), ErrPeerSuperadmin)
	})

	t.Run("superadmin deletes a lesser account", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, super, editor.ID))
		_, err := svc.GetAccountByID(ctx, editor.ID)
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}
