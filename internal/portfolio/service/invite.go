package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/pkg/cryptox"
	"github.com/foliohq/folio/pkg/identity"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/foliohq/folio/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrInvalidRole          = errors.New("invalid role")
	ErrEmailAlreadyAdmin    = errors.New("email already belongs to an admin account")
	ErrInvitePending        = errors.New("a pending invitation already exists for this email")
	ErrInviteNotFound       = errors.New("invitation not found")
	ErrInviteNotAcceptable  = errors.New("invitation is no longer acceptable")
	ErrAlreadyAdmin         = errors.New("identity already holds an admin account")
	ErrCancelForbidden      = errors.New("cannot cancel an invitation issued by someone else")
)

// codeRetries bounds regeneration attempts on an invite code collision.
const codeRetries = 3

type InviteService struct {
	Store store.Store
}

// Issue creates a pending invitation for an email address and role. The code
// is a capability: whoever presents it claims the invitation.
func (s *InviteService) Issue(ctx context.Context, caller domain.AdminAccount, email string, roleName domain.RoleName) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalise and validate the address.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invitation{}, ErrInvalidInviteRequest
	}

	// 2. Validate the role exists.
	role, err := s.Store.Roles().GetRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("attempted to issue invite with invalid role",
				slog.String("role", string(roleName)),
			)
			return domain.Invitation{}, ErrInvalidRole
		}
		log.Error("failed to fetch role", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 3. Reject addresses that already hold an account.
	_, err = s.Store.Accounts().GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.Invitation{}, ErrEmailAlreadyAdmin
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to check account email", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 4. Reject addresses with a live pending invitation.
	now := time.Now().UTC()
	pending, err := s.hasPendingFor(ctx, email, now)
	if err != nil {
		log.Error("failed to check pending invitations", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if pending {
		return domain.Invitation{}, ErrInvitePending
	}

	// 5. Generate a code and store the invitation, regenerating on the
	// off chance the code collides with an existing one.
	inv := domain.Invitation{
		Email:     email,
		RoleID:    role.ID,
		Role:      role,
		InvitedBy: caller.ID,
		Status:    domain.InvitationPending,
		ExpiresAt: now.Add(domain.InviteTTL),
	}
	for attempt := 0; attempt < codeRetries; attempt++ {
		code, err := cryptox.GenerateCode(domain.InviteCodeLength)
		if err != nil {
			log.Error("failed to generate invite code", slog.Any("error", err))
			return domain.Invitation{}, err
		}

		// The unique constraint on insert still catches a concurrent
		// allocation of the same code after this check.
		taken, err := s.Store.Invitations().CodeExists(ctx, code)
		if err != nil {
			log.Error("failed to check invite code", slog.Any("error", err))
			return domain.Invitation{}, err
		}
		if taken {
			continue
		}

		inv.ID = idx.New().String()
		inv.Code = code

		err = s.Store.Invitations().CreateInvitation(ctx, inv)
		if errors.Is(err, store.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			log.Error("failed to create invitation", slog.Any("error", err))
			return domain.Invitation{}, err
		}

		log.Info("invitation issued",
			slog.String("invitation_id", inv.ID),
			slog.String("email", email),
			slog.String("role", string(role.Name)),
			slog.String("invited_by", caller.ID),
		)
		return s.Store.Invitations().GetInvitationByID(ctx, inv.ID)
	}

	log.Error("exhausted invite code generation attempts")
	return domain.Invitation{}, errors.New("could not allocate a unique invite code")
}

// hasPendingFor reports whether email has an unexpired pending invitation.
func (s *InviteService) hasPendingFor(ctx context.Context, email string, now time.Time) (bool, error) {
	invs, err := s.Store.Invitations().ListInvitations(ctx)
	if err != nil {
		return false, err
	}
	for _, inv := range invs {
		if inv.Email == email && inv.Acceptable(now) {
			return true, nil
		}
	}
	return false, nil
}

// ListVisible returns the invitations the caller may see: account managers
// see everything, plain inviters see only what they issued themselves.
func (s *InviteService) ListVisible(ctx context.Context, caller domain.AdminAccount) ([]domain.Invitation, error) {
	if caller.HasPermission(domain.PermManageAccounts) {
		return s.Store.Invitations().ListInvitations(ctx)
	}
	return s.Store.Invitations().ListInvitationsByInviter(ctx, caller.ID)
}

// Validate looks up an invitation by code for the public pre-acceptance
// check. It never mutates state. Codes that exist but are no longer
// acceptable (expired, cancelled or already redeemed) fail the same way
// Accept would, so the preview never promises what Accept will refuse.
func (s *InviteService) Validate(ctx context.Context, code string) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetInvitationByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInviteNotFound
		}
		return domain.Invitation{}, err
	}
	if !inv.Acceptable(time.Now().UTC()) {
		return domain.Invitation{}, ErrInviteNotAcceptable
	}
	return inv, nil
}

// Accept redeems an invitation code for a verified identity, creating the
// admin account in the same transaction that consumes the invitation. The
// status guard in MarkAccepted makes redemption exactly-once even under
// concurrent accepts of the same code.
func (s *InviteService) Accept(ctx context.Context, ident identity.Identity, code string) (domain.AdminAccount, error) {
	log := slogx.FromContext(ctx)

	// 1. The identity must not already hold an account.
	_, err := s.Store.Accounts().GetAccountBySubject(ctx, ident.SubjectID)
	switch {
	case err == nil:
		return domain.AdminAccount{}, ErrAlreadyAdmin
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to resolve subject", slog.Any("error", err))
		return domain.AdminAccount{}, err
	}

	// 2. Look up and vet the invitation.
	inv, err := s.Store.Invitations().GetInvitationByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AdminAccount{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.AdminAccount{}, err
	}
	if !inv.Acceptable(time.Now().UTC()) {
		return domain.AdminAccount{}, ErrInviteNotAcceptable
	}

	// 3. Consume the invitation and provision the account atomically.
	account := domain.AdminAccount{
		ID:          idx.New().String(),
		SubjectID:   ident.SubjectID,
		Email:       inv.Email,
		DisplayName: displayNameOrDefault(ident),
		RoleID:      inv.RoleID,
		Active:      true,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyAdmin
			}
			return err
		}
		if err := tx.Invitations().MarkAccepted(ctx, inv.ID, account.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotAcceptable
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyAdmin) || errors.Is(err, ErrInviteNotAcceptable) {
			return domain.AdminAccount{}, err
		}
		log.Error("failed to accept invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.AdminAccount{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("account_id", account.ID),
		slog.String("role", string(inv.Role.Name)),
	)
	return s.Store.Accounts().GetAccountByID(ctx, account.ID)
}

// Cancel voids a pending invitation. Account managers may cancel any
// invitation; plain inviters may only cancel their own.
func (s *InviteService) Cancel(ctx context.Context, caller domain.AdminAccount, invitationID string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. The invitation must exist and be visible to the caller.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if inv.InvitedBy != caller.ID && !caller.HasPermission(domain.PermManageAccounts) {
		return domain.Invitation{}, ErrCancelForbidden
	}

	// 2. Transition pending -> cancelled; anything else is not cancellable.
	if err := s.Store.Invitations().MarkCancelled(ctx, invitationID, caller.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInviteNotAcceptable
		}
		log.Error("failed to cancel invitation",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation cancelled",
		slog.String("invitation_id", invitationID),
		slog.String("cancelled_by", caller.ID),
	)
	return s.Store.Invitations().GetInvitationByID(ctx, invitationID)
}

// EffectiveStatus reports the status with lazy expiry applied: a pending
// invitation past its expiry reads as expired without being rewritten.
func EffectiveStatus(inv domain.Invitation, now time.Time) domain.InvitationStatus {
	if inv.Status == domain.InvitationPending && inv.IsExpired(now) {
		return domain.InvitationExpired
	}
	return inv.Status
}
