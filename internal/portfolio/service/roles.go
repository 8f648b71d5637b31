package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/foliohq/folio/pkg/slogx"
)

var ErrRoleNotFound = errors.New("role not found")

type RolesService struct {
	Store store.Store
}

// seedRole is a canonical role definition applied at startup.
type seedRole struct {
	name        domain.RoleName
	description string
	permissions []domain.Permission
}

var contentPermissions = []domain.Permission{
	domain.PermManageProjects,
	domain.PermManageSkills,
	domain.PermManageAbout,
	domain.PermManageExperience,
	domain.PermManageEducation,
	domain.PermManageTestimonials,
	domain.PermManageServices,
}

// seedRoles are the built-in roles. Seeding is idempotent: missing roles are
// created, existing ones have their description and permissions refreshed so
// upgrades can ship permission changes without migrations.
var seedRoles = []seedRole{
	{
		name:        domain.RoleSuperadmin,
		description: "Full access to all features and admin management",
		permissions: append(slices.Clone(contentPermissions),
			domain.PermManageSettings,
			domain.PermManageAccounts,
			domain.PermManageRoles,
			domain.PermSendInvitations,
			domain.PermViewAnalytics,
			domain.PermSystemConfig,
		),
	},
	{
		name:        domain.RoleAdmin,
		description: "Full access to portfolio content management",
		permissions: append(slices.Clone(contentPermissions),
			domain.PermManageSettings,
			domain.PermViewAnalytics,
		),
	},
	{
		name:        domain.RoleEditor,
		description: "Can edit portfolio content but cannot manage admin users",
		permissions: slices.Clone(contentPermissions),
	},
	{
		name:        domain.RoleViewer,
		description: "Read-only access to portfolio content",
		permissions: []domain.Permission{
			domain.PermViewProjects,
			domain.PermViewSkills,
			domain.PermViewAbout,
			domain.PermViewExperience,
			domain.PermViewEducation,
			domain.PermViewTestimonials,
			domain.PermViewServices,
			domain.PermViewAnalytics,
		},
	},
}

// Seed creates the built-in roles or refreshes their definitions if they
// already exist. Safe to run on every startup.
func (s *RolesService) Seed(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	var created, updated int
	for _, def := range seedRoles {
		existing, err := s.Store.Roles().GetRoleByName(ctx, def.name)
		switch {
		case err == nil:
			// 1. Role exists: refresh description and permission set.
			if err := s.Store.Roles().UpdateRoleDefinition(ctx, existing.ID, def.description, def.permissions); err != nil {
				log.Error("failed to refresh role definition",
					slog.String("role", string(def.name)),
					slog.Any("error", err),
				)
				return err
			}
			updated++

		case errors.Is(err, store.ErrNotFound):
			// 2. Role missing: create it.
			role := domain.Role{
				ID:          idx.New().String(),
				Name:        def.name,
				Description: def.description,
				Permissions: def.permissions,
				Active:      true,
			}
			if err := s.Store.Roles().CreateRole(ctx, role); err != nil {
				// A concurrent seeder may have won the race; treat the
				// duplicate as an update on the next pass.
				if errors.Is(err, store.ErrAlreadyExists) {
					updated++
					continue
				}
				log.Error("failed to create role",
					slog.String("role", string(def.name)),
					slog.Any("error", err),
				)
				return err
			}
			created++

		default:
			log.Error("failed to look up role during seed", slog.Any("error", err))
			return err
		}
	}

	log.Info("role seed completed",
		slog.Int("created", created),
		slog.Int("updated", updated),
	)
	return nil
}

// GetRoleByID fetches a role by its ID.
func (s *RolesService) GetRoleByID(ctx context.Context, roleID string) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByID(ctx, roleID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return role, err
}

// GetRoleByName fetches a role by name.
func (s *RolesService) GetRoleByName(ctx context.Context, name domain.RoleName) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return role, err
}

// ListVisible returns the roles the caller may see. Superadmins and admins
// see the whole registry; everyone else only sees their own role.
func (s *RolesService) ListVisible(ctx context.Context, caller domain.AdminAccount) ([]domain.Role, error) {
	if caller.Role.Name == domain.RoleSuperadmin || caller.Role.Name == domain.RoleAdmin {
		return s.Store.Roles().ListRoles(ctx)
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, caller.RoleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []domain.Role{}, nil
		}
		return nil, err
	}
	return []domain.Role{role}, nil
}
