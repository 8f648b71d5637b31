package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweep(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	contacts := &ContactService{Store: st}
	_, err := contacts.Submit(ctx, "Old Visitor", "old@example.com", "hello")
	require.NoError(t, err)

	// An invitation already past its expiry. Housekeeping must never touch
	// invitation rows.
	inviter := createAccount(t, st, "inviter@example.com", domain.RoleSuperadmin)
	role, err := st.Roles().GetRoleByName(ctx, domain.RoleViewer)
	require.NoError(t, err)
	expired := domain.Invitation{
		ID:        idx.New().String(),
		Code:      "EXPIRED1",
		Email:     "late@example.com",
		RoleID:    role.ID,
		InvitedBy: inviter.ID,
		Status:    domain.InvitationPending,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, expired))

	time.Sleep(10 * time.Millisecond)

	hk := NewHousekeepingService(st, slog.Default(), time.Hour, time.Nanosecond)
	hk.sweep()

	msgs, err := st.Contacts().ListContacts(ctx)
	require.NoError(t, err)
	require.Empty(t, msgs)

	// The lapsed invitation is counted but still stored as pending.
	got, err := st.Invitations().GetInvitationByID(ctx, expired.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, got.Status)

	n, err := st.Invitations().CountExpiredPending(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestHousekeepingStartStop(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	hk := NewHousekeepingService(st, slog.Default(), time.Hour, 0)
	hk.Start()
	hk.Stop()
}
