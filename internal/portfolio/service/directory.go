package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/foliohq/folio/pkg/identity"
	"github.com/foliohq/folio/pkg/slogx"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrEmailTaken         = errors.New("email already in use by another account")
	ErrSelfDeactivation   = errors.New("cannot deactivate your own account")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrSuperadminRequired = errors.New("only superadmins may delete accounts")
	ErrPeerSuperadmin     = errors.New("cannot delete another superadmin account")
)

type DirectoryService struct {
	Store store.Store
}

// Resolve maps a verified external identity to its admin account. It does not
// create accounts; unknown subjects get ErrAccountNotFound and deactivated
// accounts get ErrAccountInactive.
func (s *DirectoryService) Resolve(ctx context.Context, subjectID string) (domain.AdminAccount, error) {
	account, err := s.Store.Accounts().GetAccountBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AdminAccount{}, ErrAccountNotFound
		}
		return domain.AdminAccount{}, err
	}
	if !account.Active {
		return domain.AdminAccount{}, ErrAccountInactive
	}
	return account, nil
}

// ProvisionOrLink resolves an identity to an account, creating or re-linking
// one when necessary. Resolution order:
//
//  1. An account already bound to the subject wins outright.
//  2. An account with a matching email but a different subject is re-linked,
//     covering identity providers that rotate subject identifiers.
//  3. Otherwise a fresh account is provisioned with the default role.
func (s *DirectoryService) ProvisionOrLink(ctx context.Context, ident identity.Identity) (domain.AdminAccount, error) {
	log := slogx.FromContext(ctx)

	// 1. Fast path: subject already linked.
	account, err := s.Store.Accounts().GetAccountBySubject(ctx, ident.SubjectID)
	if err == nil {
		if !account.Active {
			return domain.AdminAccount{}, ErrAccountInactive
		}
		return account, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to resolve subject", slog.Any("error", err))
		return domain.AdminAccount{}, err
	}

	// 2. Re-link by email when the provider rotated the subject id.
	if ident.Email != "" {
		existing, err := s.Store.Accounts().GetAccountByEmail(ctx, ident.Email)
		switch {
		case err == nil:
			if err := s.Store.Accounts().RelinkSubject(ctx, existing.ID, ident.SubjectID, ident.DisplayName); err != nil {
				log.Error("failed to re-link account subject",
					slog.String("account_id", existing.ID),
					slog.Any("error", err),
				)
				return domain.AdminAccount{}, err
			}
			log.Info("re-linked account to new subject",
				slog.String("account_id", existing.ID),
				slog.String("email", ident.Email),
			)
			return s.Store.Accounts().GetAccountByID(ctx, existing.ID)

		case !errors.Is(err, store.ErrNotFound):
			log.Error("failed to resolve account by email", slog.Any("error", err))
			return domain.AdminAccount{}, err
		}
	}

	// 3. Provision a fresh account. The very first account bootstraps the
	// directory and gets superadmin; everyone after that starts as a plain
	// admin and is promoted through invitations.
	total, err := s.Store.Accounts().CountAccounts(ctx)
	if err != nil {
		log.Error("failed to count accounts", slog.Any("error", err))
		return domain.AdminAccount{}, err
	}
	roleName := domain.RoleAdmin
	if total == 0 {
		roleName = domain.RoleSuperadmin
	}

	role, err := s.Store.Roles().GetRoleByName(ctx, roleName)
	if err != nil {
		log.Error("default role missing during provisioning", slog.Any("error", err))
		return domain.AdminAccount{}, err
	}

	account = domain.AdminAccount{
		ID:          idx.New().String(),
		SubjectID:   ident.SubjectID,
		Email:       ident.Email,
		DisplayName: displayNameOrDefault(ident),
		RoleID:      role.ID,
		Active:      true,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		// Another request may have provisioned the same identity
		// concurrently; resolve again instead of failing.
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Resolve(ctx, ident.SubjectID)
		}
		log.Error("failed to provision account", slog.Any("error", err))
		return domain.AdminAccount{}, err
	}

	log.Info("provisioned admin account",
		slog.String("account_id", account.ID),
		slog.String("email", account.Email),
		slog.String("role", string(role.Name)),
	)
	return s.Store.Accounts().GetAccountByID(ctx, account.ID)
}

// displayNameOrDefault falls back to the email local part when the identity
// carries no name.
func displayNameOrDefault(ident identity.Identity) string {
	if ident.DisplayName != "" {
		return ident.DisplayName
	}
	if at := strings.IndexByte(ident.Email, '@'); at > 0 {
		return ident.Email[:at]
	}
	return ident.Email
}

// GetAccountByID fetches an account by id.
func (s *DirectoryService) GetAccountByID(ctx context.Context, id string) (domain.AdminAccount, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.AdminAccount{}, ErrAccountNotFound
	}
	return account, err
}

// ListVisible returns the accounts the caller may see: account managers see
// the whole directory newest first, everyone else sees only themselves.
func (s *DirectoryService) ListVisible(ctx context.Context, caller domain.AdminAccount) ([]domain.AdminAccount, error) {
	if caller.HasPermission(domain.PermManageAccounts) {
		return s.Store.Accounts().ListAccounts(ctx)
	}
	return []domain.AdminAccount{caller}, nil
}

// UpdateProfile applies a partial update to the caller's own profile. Email
// changes collide with the unique constraint when the address is taken.
func (s *DirectoryService) UpdateProfile(ctx context.Context, accountID string, patch domain.ProfilePatch) (domain.AdminAccount, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Accounts().UpdateProfile(ctx, accountID, patch); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.AdminAccount{}, ErrEmailTaken
		case errors.Is(err, store.ErrNotFound):
			return domain.AdminAccount{}, ErrAccountNotFound
		}
		log.Error("failed to update profile",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return domain.AdminAccount{}, err
	}
	return s.Store.Accounts().GetAccountByID(ctx, accountID)
}

// SetActive flips another account's activation flag. Callers cannot
// deactivate themselves; that would lock the caller out mid-session.
func (s *DirectoryService) SetActive(ctx context.Context, caller domain.AdminAccount, accountID string, active bool) (domain.AdminAccount, error) {
	log := slogx.FromContext(ctx)

	// 1. Guard self-deactivation.
	if accountID == caller.ID && !active {
		log.Warn("blocked self-deactivation attempt",
			slog.String("account_id", caller.ID),
		)
		return domain.AdminAccount{}, ErrSelfDeactivation
	}

	// 2. Flip the flag.
	if err := s.Store.Accounts().SetActive(ctx, accountID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AdminAccount{}, ErrAccountNotFound
		}
		log.Error("failed to set account activation",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return domain.AdminAccount{}, err
	}

	log.Info("account activation changed",
		slog.String("account_id", accountID),
		slog.Bool("active", active),
		slog.String("changed_by", caller.ID),
	)
	return s.Store.Accounts().GetAccountByID(ctx, accountID)
}

// Delete removes an account outright. Only superadmins may delete, nobody may
// delete themselves, and superadmins cannot delete their peers: a superadmin
// must first be demoted or deactivated by another superadmin.
func (s *DirectoryService) Delete(ctx context.Context, caller domain.AdminAccount, accountID string) error {
	log := slogx.FromContext(ctx)

	// 1. Deletion is reserved for superadmins.
	if !caller.IsSuperadmin() {
		log.Warn("blocked account deletion by non-superadmin",
			slog.String("caller_id", caller.ID),
			slog.String("target_id", accountID),
		)
		return ErrSuperadminRequired
	}

	// 2. Guard self-deletion.
	if accountID == caller.ID {
		return ErrSelfDeletion
	}

	// 3. Guard peer-superadmin deletion.
	target, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		log.Error("failed to fetch account for deletion", slog.Any("error", err))
		return err
	}
	if target.IsSuperadmin() {
		log.Warn("blocked deletion of superadmin account",
			slog.String("caller_id", caller.ID),
			slog.String("target_id", accountID),
		)
		return ErrPeerSuperadmin
	}

	// 4. Delete.
	if err := s.Store.Accounts().DeleteAccount(ctx, accountID); err != nil {
		log.Error("failed to delete account",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("account deleted",
		slog.String("account_id", accountID),
		slog.String("deleted_by", caller.ID),
	)
	return nil
}

// TouchLogin stamps the account's last_login. Failures are logged and
// swallowed; a missing timestamp must never fail a request.
func (s *DirectoryService) TouchLogin(ctx context.Context, accountID string) {
	if err := s.Store.Accounts().TouchLogin(ctx, accountID); err != nil {
		slogx.FromContext(ctx).Warn("failed to stamp last login",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
	}
}
