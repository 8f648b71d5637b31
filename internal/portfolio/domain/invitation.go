package domain

import "time"

// InvitationStatus is the stored lifecycle state of an invitation. Transitions
// are one-directional: pending moves to exactly one of accepted or cancelled
// and never back. Expiry is observed lazily through Acceptable rather than by
// rewriting the stored status, so a pending row past its expiry is treated as
// expired without ever being updated.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationExpired   InvitationStatus = "expired"
	InvitationCancelled InvitationStatus = "cancelled"
)

const (
	// InviteCodeLength is the fixed length of generated invite codes.
	InviteCodeLength = 8

	// InviteTTL is the fixed validity window for new invitations.
	InviteTTL = 7 * 24 * time.Hour
)

type Invitation struct {
	ID          string
	Code        string // capability token; unique across all invitations
	Email       string
	RoleID      string
	Role        Role // populated on reads via join
	InvitedBy   string
	Status      InvitationStatus
	ExpiresAt   time.Time
	AcceptedBy  *string
	AcceptedAt  *time.Time
	CancelledBy *string
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsExpired reports whether the invitation's expiry has passed at now.
func (i Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Acceptable reports whether the invitation can still be redeemed: it must be
// pending and not past its expiry.
func (i Invitation) Acceptable(now time.Time) bool {
	return i.Status == InvitationPending && !i.IsExpired(now)
}
