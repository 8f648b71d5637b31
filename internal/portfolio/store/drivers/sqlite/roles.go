package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type rolesRepo struct {
	q querier
}

const roleColumns = `id, name, description, permissions, active, deleted, created_at, updated_at`

func scanRole(row *sql.Row) (domain.Role, error) {
	var (
		r     domain.Role
		name  string
		perms string
	)
	err := row.Scan(&r.ID, &name, &r.Description, &perms, &r.Active, &r.Deleted, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	r.Name = domain.RoleName(name)
	r.Permissions = splitPermissions(perms)
	return r, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM admin_roles WHERE id = ? AND deleted = FALSE`, id)
	return scanRole(row)
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name domain.RoleName) (domain.Role, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM admin_roles WHERE name = ? AND deleted = FALSE`, string(name))
	return scanRole(row)
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM admin_roles WHERE deleted = FALSE ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var (
			role  domain.Role
			name  string
			perms string
		)
		if err := rows.Scan(&role.ID, &name, &role.Description, &perms, &role.Active, &role.Deleted, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		role.Name = domain.RoleName(name)
		role.Permissions = splitPermissions(perms)
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO admin_roles (id, name, description, permissions, active, deleted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, FALSE, ?, ?)`,
		role.ID, string(role.Name), role.Description, joinPermissions(role.Permissions), role.Active, now, now)
	return mapConflict(err)
}

func (r *rolesRepo) UpdateRoleDefinition(ctx context.Context, id, description string, perms []domain.Permission) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE admin_roles SET description = ?, permissions = ?, updated_at = ? WHERE id = ? AND deleted = FALSE`,
		description, joinPermissions(perms), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
