package domain

import "time"

// AdminAccount links a verified external identity to a local admin role.
// SubjectID is the identity provider's stable subject identifier and is
// immutable per real-world identity; the same email may be re-linked to a new
// subject when the provider rotates UIDs.
type AdminAccount struct {
	ID          string
	SubjectID   string
	Email       string
	DisplayName string
	RoleID      string
	Role        Role // populated on reads via join
	Active      bool
	LastLogin   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsSuperadmin reports whether the account holds the superadmin role.
// This is the only role-name comparison authorization logic performs.
func (a AdminAccount) IsSuperadmin() bool {
	return a.Role.Name == RoleSuperadmin
}

// HasPermission checks membership of p in the account's role permission set.
func (a AdminAccount) HasPermission(p Permission) bool {
	return a.Role.HasPermission(p)
}

// ProfilePatch is a partial update of mutable profile fields. Nil means
// "leave unchanged".
type ProfilePatch struct {
	DisplayName *string
	Email       *string
}
