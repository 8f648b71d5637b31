package api_test

import (
	"testing"

	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

// TestFirstLoginBootstrap checks that the very first login provisions a
// superadmin account while later logins only get the admin role, which
// cannot issue invitations.
func TestFirstLoginBootstrap(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	first := srv.As(t, "subject-first", "owner@example.com", "Site Owner")
	me, err := first.GetMe(ctx)
	require.NoError(t, err)
	require.Equal(t, "superadmin", me.Role)

	second := srv.As(t, "subject-second", "helper@example.com", "Helper")
	me, err = second.GetMe(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin", me.Role)

	_, err = second.IssueInvitation(ctx, foliosdk.IssueInvitationRequest{
		Email: "editor@example.com",
		Role:  "editor",
	})
	var apiErr *foliosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)
}

func TestInvitationIssueValidateAccept(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")

	inv, err := super.IssueInvitation(ctx, foliosdk.IssueInvitationRequest{
		Email: "editor@example.com",
		Role:  "editor",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", inv.Status)
	require.Len(t, inv.Code, 8)

	// Anonymous validation previews the invitation without consuming it.
	preview, err := srv.Client.ValidateInvitation(ctx, inv.Code)
	require.NoError(t, err)
	require.True(t, preview.Valid)
	require.Equal(t, "editor@example.com", preview.Email)
	require.Equal(t, "editor", preview.Role)

	// A fresh identity accepts and gets the invited role.
	editor := srv.As(t, "subject-editor", "editor@example.com", "Eddy")
	account, err := editor.AcceptInvitation(ctx, foliosdk.AcceptInvitationRequest{Code: inv.Code})
	require.NoError(t, err)
	require.Equal(t, "editor", account.Role)
	require.Equal(t, "editor@example.com", account.Email)

	// The code is spent, so validation now fails the same way accept would.
	_, err = srv.Client.ValidateInvitation(ctx, inv.Code)
	var apiErr *foliosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)

	// The invitation list reflects acceptance.
	invs, err := super.ListInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	require.Equal(t, "accepted", invs[0].Status)
}

func TestInvitationCancel(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")

	inv, err := super.IssueInvitation(ctx, foliosdk.IssueInvitationRequest{
		Email: "never@example.com",
		Role:  "viewer",
	})
	require.NoError(t, err)

	cancelled, err := super.CancelInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "cancelled", cancelled.Status)

	// A cancelled code cannot be accepted.
	late := srv.As(t, "subject-late", "never@example.com", "")
	_, err = late.AcceptInvitation(ctx, foliosdk.AcceptInvitationRequest{Code: inv.Code})
	var apiErr *foliosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
}
