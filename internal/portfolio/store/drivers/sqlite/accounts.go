package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
)

type accountsRepo struct {
	q querier
}

// Account reads join the role row so authorization decisions never need a
// second query.
const accountSelect = `
	SELECT a.id, a.subject_id, a.email, a.display_name, a.role_id, a.active, a.last_login, a.created_at, a.updated_at,
	       r.id, r.name, r.description, r.permissions, r.active, r.deleted, r.created_at, r.updated_at
	FROM admin_accounts a
	JOIN admin_roles r ON r.id = a.role_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.AdminAccount, error) {
	var (
		a         domain.AdminAccount
		lastLogin sql.NullTime
		roleName  string
		rolePerms string
	)
	err := row.Scan(
		&a.ID, &a.SubjectID, &a.Email, &a.DisplayName, &a.RoleID, &a.Active, &lastLogin, &a.CreatedAt, &a.UpdatedAt,
		&a.Role.ID, &roleName, &a.Role.Description, &rolePerms, &a.Role.Active, &a.Role.Deleted, &a.Role.CreatedAt, &a.Role.UpdatedAt,
	)
	if err != nil {
		return domain.AdminAccount{}, mapNotFound(err)
	}
	a.LastLogin = mapNullTimePtr(lastLogin)
	a.Role.Name = domain.RoleName(roleName)
	a.Role.Permissions = splitPermissions(rolePerms)
	return a, nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.AdminAccount, error) {
	return scanAccount(r.q.QueryRowContext(ctx, accountSelect+` WHERE a.id = ?`, id))
}

func (r *accountsRepo) GetAccountBySubject(ctx context.Context, subjectID string) (domain.AdminAccount, error) {
	return scanAccount(r.q.QueryRowContext(ctx, accountSelect+` WHERE a.subject_id = ?`, subjectID))
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.AdminAccount, error) {
	return scanAccount(r.q.QueryRowContext(ctx, accountSelect+` WHERE a.email = ?`, email))
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.AdminAccount) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO admin_accounts (id, subject_id, email, display_name, role_id, active, last_login, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SubjectID, a.Email, a.DisplayName, a.RoleID, a.Active, mapOptionalTime(a.LastLogin), now, now)
	return mapConflict(err)
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.AdminAccount, error) {
	rows, err := r.q.QueryContext(ctx, accountSelect+` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.AdminAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountsRepo) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_accounts`).Scan(&n)
	return n, err
}

func (r *accountsRepo) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE admin_accounts
		 SET display_name = COALESCE(?, display_name),
		     email        = COALESCE(?, email),
		     updated_at   = ?
		 WHERE id = ?`,
		patch.DisplayName, patch.Email, time.Now().UTC(), id)
	return mapConflict(err)
}

func (r *accountsRepo) RelinkSubject(ctx context.Context, id, subjectID, displayName string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE admin_accounts
		 SET subject_id   = ?,
		     display_name = CASE WHEN display_name = '' THEN ? ELSE display_name END,
		     active       = TRUE,
		     updated_at   = ?
		 WHERE id = ?`,
		subjectID, displayName, time.Now().UTC(), id)
	if err != nil {
		return mapConflict(err)
	}
	return requireRow(res)
}

func (r *accountsRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE admin_accounts SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM admin_accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) TouchLogin(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE admin_accounts SET last_login = ? WHERE id = ?`,
		time.Now().UTC(), id)
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
