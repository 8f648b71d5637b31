package service

import (
	"context"
	"testing"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/pkg/identity"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestIssueInvitation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}
	inviter := createAccount(t, st, "inviter@example.com", domain.RoleSuperadmin)

	t.Run("issues a pending invitation", func(t *testing.T) {
		inv, err := svc.Issue(ctx, inviter, "New.Admin@Example.com", domain.RoleEditor)
		require.NoError(t, err)
		require.Equal(t, "new.admin@example.com", inv.Email)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Len(t, inv.Code, domain.InviteCodeLength)
		require.Equal(t, inviter.ID, inv.InvitedBy)
		require.WithinDuration(t, time.Now().Add(domain.InviteTTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("rejects a second pending invitation for the same email", func(t *testing.T) {
		_, err := svc.Issue(ctx, inviter, "new.admin@example.com", domain.RoleEditor)
		require.ErrorIs(t, err, ErrInvitePending)
	})

	t.Run("rejects emails that already hold an account", func(t *testing.T) {
		_, err := svc.Issue(ctx, inviter, "inviter@example.com", domain.RoleEditor)
		require.ErrorIs(t, err, ErrEmailAlreadyAdmin)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := svc.Issue(ctx, inviter, "someone@example.com", "owner")
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		_, err := svc.Issue(ctx, inviter, "not-an-email", domain.RoleEditor)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("issued codes are registered", func(t *testing.T) {
		inv, err := svc.Issue(ctx, inviter, "taken@example.com", domain.RoleEditor)
		require.NoError(t, err)

		taken, err := st.Invitations().CodeExists(ctx, inv.Code)
		require.NoError(t, err)
		require.True(t, taken)

		free, err := st.Invitations().CodeExists(ctx, "AAAAAAA1")
		require.NoError(t, err)
		require.False(t, free)
	})
}

func TestValidateInvitation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}
	inviter := createAccount(t, st, "inviter@example.com", domain.RoleSuperadmin)

	t.Run("previews a pending invitation", func(t *testing.T) {
		inv, err := svc.Issue(ctx, inviter, "fresh@example.com", domain.RoleEditor)
		require.NoError(t, err)

		got, err := svc.Validate(ctx, "  "+inv.Code+"  ")
		require.NoError(t, err)
		require.Equal(t, "fresh@example.com", got.Email)
		require.Equal(t, domain.RoleEditor, got.Role.Name)
	})

	t.Run("unknown codes are not found", func(t *testing.T) {
		_, err := svc.Validate(ctx, "ZZZZZZZZ")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("expired invitations fail even while stored as pending", func(t *testing.T) {
		role, err := st.Roles().GetRoleByName(ctx, domain.RoleViewer)
		require.NoError(t, err)
		expired := domain.Invitation{
			ID:        idx.New().String(),
			Code:      "EXPIRED2",
			Email:     "slow@example.com",
			RoleID:    role.ID,
			InvitedBy: inviter.ID,
			Status:    domain.InvitationPending,
			ExpiresAt: time.Now().UTC().Add(-time.Hour),
		}
		require.NoError(t, st.Invitations().CreateInvitation(ctx, expired))

		_, err = svc.Validate(ctx, expired.Code)
		require.ErrorIs(t, err, ErrInviteNotAcceptable)
	})

	t.Run("cancelled invitations fail", func(t *testing.T) {
		inv, err := svc.Issue(ctx, inviter, "gone@example.com", domain.RoleEditor)
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, inviter, inv.ID)
		require.NoError(t, err)

		_, err = svc.Validate(ctx, inv.Code)
		require.ErrorIs(t, err, ErrInviteNotAcceptable)
	})
}

func TestAcceptInvitation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}
	inviter := createAccount(t, st, "inviter@example.com", domain.RoleSuperadmin)

	inv, err := svc.Issue(ctx, inviter, "editor@example.com", domain.RoleEditor)
	require.NoError(t, err)

	ident := identity.Identity{
		SubjectID:   "subject-editor",
		Email:       "editor@example.com",
		DisplayName: "Eddy Editor",
	}

	t.Run("creates the account with the invited role", func(t *testing.T) {
		account, err := svc.Accept(ctx, ident, inv.Code)
		require.NoError(t, err)
		require.Equal(t, "editor@example.com", account.Email)
		require.Equal(t, domain.RoleEditor, account.Role.Name)
		require.True(t, account.Active)

		got, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, got.Status)
		require.NotNil(t, got.AcceptedBy)
		require.Equal(t, account.ID, *got.AcceptedBy)
	})

	t.Run("redemption is exactly-once", func(t *testing.T) {
		other := identity.Identity{SubjectID: "subject-other", Email: "other@example.com"}
		_, err := svc.Accept(ctx, other, inv.Code)
		require.ErrorIs(t, err, ErrInviteNotAcceptable)
	})

	t.Run("an identity with an account cannot accept again", func(t *testing.T) {
		inv2, err := svc.Issue(ctx, inviter, "second@example.com", domain.RoleViewer)
		require.NoError(t, err)

		_, err = svc.Accept(ctx, ident, inv2.Code)
		require.ErrorIs(t, err, ErrAlreadyAdmin)
	})

	t.Run("unknown codes are not found", func(t *testing.T) {
		fresh := identity.Identity{SubjectID: "subject-fresh", Email: "fresh@example.com"}
		_, err := svc.Accept(ctx, fresh, "ZZZZZZZZ")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestInvitationLazyExpiry(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}
	inviter := createAccount(t, st, "inviter@example.com", domain.RoleSuperadmin)

	inv, err := svc.Issue(ctx, inviter, "late@example.com", domain.RoleViewer)
	require.NoError(t, err)

	// The stored status never changes; expiry is computed on read.
	future := inv.ExpiresAt.Add(time.Hour)
	require.Equal(t, domain.InvitationExpired, EffectiveStatus(inv, future))

	got, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, got.Status)
	require.False(t, got.Acceptable(future))
}

func TestCancelInvitation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}

	inviter := createAccount(t, st, "inviter@example.com", domain.RoleSuperadmin)
	bystander := createAccount(t, st, "editor@example.com", domain.RoleEditor)

	inv, err := svc.Issue(ctx, inviter, "cancel.me@example.com", domain.RoleViewer)
	require.NoError(t, err)

	t.Run("non-managers cannot cancel others' invitations", func(t *testing.T) {
		_, err := svc.Cancel(ctx, bystander, inv.ID)
		require.ErrorIs(t, err, ErrCancelForbidden)
	})

	t.Run("the inviter cancels", func(t *testing.T) {
		got, err := svc.Cancel(ctx, inviter, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationCancelled, got.Status)
		require.NotNil(t, got.CancelledBy)
		require.Equal(t, inviter.ID, *got.CancelledBy)
	})

	t.Run("a cancelled invitation cannot be cancelled again", func(t *testing.T) {
		_, err := svc.Cancel(ctx, inviter, inv.ID)
		require.ErrorIs(t, err, ErrInviteNotAcceptable)
	})
}

func TestListVisibleInvitations(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &InviteService{Store: st}

	super := createAccount(t, st, "super@example.com", domain.RoleSuperadmin)

	_, err := svc.Issue(ctx, super, "a@example.com", domain.RoleViewer)
	require.NoError(t, err)
	_, err = svc.Issue(ctx, super, "b@example.com", domain.RoleViewer)
	require.NoError(t, err)

	t.Run("account managers see everything", func(t *testing.T) {
		invs, err := svc.ListVisible(ctx, super)
		require.NoError(t, err)
		require.Len(t, invs, 2)
	})

	t.Run("plain accounts see only their own", func(t *testing.T) {
		editor := createAccount(t, st, "plain@example.com", domain.RoleEditor)
		invs, err := svc.ListVisible(ctx, editor)
		require.NoError(t, err)
		require.Empty(t, invs)
	})
}
