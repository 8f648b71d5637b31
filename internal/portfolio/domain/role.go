package domain

import "time"

// RoleName is the closed set of admin role names. Only RoleSuperadmin is ever
// special-cased by authorization logic; the other roles differ purely by
// their permission sets.
type RoleName string

const (
	RoleSuperadmin RoleName = "superadmin"
	RoleAdmin      RoleName = "admin"
	RoleEditor     RoleName = "editor"
	RoleViewer     RoleName = "viewer"
)

// Permission names a single action an admin account may perform. Permissions
// are checked by set membership only; there is no inheritance between roles.
type Permission string

const (
	PermManageProjects     Permission = "manage_projects"
	PermManageSkills       Permission = "manage_skills"
	PermManageAbout        Permission = "manage_about"
	PermManageExperience   Permission = "manage_experience"
	PermManageEducation    Permission = "manage_education"
	PermManageTestimonials Permission = "manage_testimonials"
	PermManageServices     Permission = "manage_services"
	PermManageSettings     Permission = "manage_settings"
	PermManageAccounts     Permission = "manage_admin_users"
	PermManageRoles        Permission = "manage_admin_roles"
	PermSendInvitations    Permission = "send_invitations"
	PermViewAnalytics      Permission = "view_analytics"
	PermSystemConfig       Permission = "system_configuration"

	PermViewProjects     Permission = "view_projects"
	PermViewSkills       Permission = "view_skills"
	PermViewAbout        Permission = "view_about"
	PermViewExperience   Permission = "view_experience"
	PermViewEducation    Permission = "view_education"
	PermViewTestimonials Permission = "view_testimonials"
	PermViewServices     Permission = "view_services"
)

type Role struct {
	ID          string
	Name        RoleName
	Description string
	Permissions []Permission
	Active      bool
	Deleted     bool // reserved; no operation currently retires a role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission reports whether p is a member of the role's permission set.
func (r Role) HasPermission(p Permission) bool {
	for _, have := range r.Permissions {
		if have == p {
			return true
		}
	}
	return false
}
