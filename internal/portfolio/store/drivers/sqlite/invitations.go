package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type invitationsRepo struct {
	q querier
}

const invitationSelect = `
	SELECT i.id, i.code, i.email, i.role_id, i.invited_by, i.status, i.expires_at,
	       i.accepted_by, i.accepted_at, i.cancelled_by, i.cancelled_at, i.created_at, i.updated_at,
	       r.id, r.name, r.description, r.permissions, r.active, r.deleted, r.created_at, r.updated_at
	FROM invitations i
	JOIN admin_roles r ON r.id = i.role_id`

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv         domain.Invitation
		status      string
		acceptedBy  sql.NullString
		acceptedAt  sql.NullTime
		cancelledBy sql.NullString
		cancelledAt sql.NullTime
		roleName    string
		rolePerms   string
	)
	err := row.Scan(
		&inv.ID, &inv.Code, &inv.Email, &inv.RoleID, &inv.InvitedBy, &status, &inv.ExpiresAt,
		&acceptedBy, &acceptedAt, &cancelledBy, &cancelledAt, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.Role.ID, &roleName, &inv.Role.Description, &rolePerms, &inv.Role.Active, &inv.Role.Deleted, &inv.Role.CreatedAt, &inv.Role.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.Status = domain.InvitationStatus(status)
	inv.AcceptedBy = mapNullStringPtr(acceptedBy)
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	inv.CancelledBy = mapNullStringPtr(cancelledBy)
	inv.CancelledAt = mapNullTimePtr(cancelledAt)
	inv.Role.Name = domain.RoleName(roleName)
	inv.Role.Permissions = splitPermissions(rolePerms)
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO invitations (id, code, email, role_id, invited_by, status, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Code, inv.Email, inv.RoleID, inv.InvitedBy, string(inv.Status), inv.ExpiresAt.UTC(), now, now)
	return mapConflict(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	return scanInvitation(r.q.QueryRowContext(ctx, invitationSelect+` WHERE i.id = ?`, id))
}

func (r *invitationsRepo) GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error) {
	return scanInvitation(r.q.QueryRowContext(ctx, invitationSelect+` WHERE i.code = ?`, code))
}

func (r *invitationsRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM invitations WHERE code = ?`, code).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitationsRepo) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := r.q.QueryContext(ctx, invitationSelect+` ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvitations(rows)
}

func (r *invitationsRepo) ListInvitationsByInviter(ctx context.Context, accountID string) ([]domain.Invitation, error) {
	rows, err := r.q.QueryContext(ctx,
		invitationSelect+` WHERE i.invited_by = ? ORDER BY i.created_at DESC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvitations(rows)
}

func collectInvitations(rows *sql.Rows) ([]domain.Invitation, error) {
	var invs []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

// MarkAccepted and MarkCancelled guard on the stored status so either
// transition lands at most once; a row that is no longer pending reports
// store.ErrNotFound.

func (r *invitationsRepo) MarkAccepted(ctx context.Context, id, acceptedBy string) error {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx,
		`UPDATE invitations
		 SET status = ?, accepted_by = ?, accepted_at = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		string(domain.InvitationAccepted), acceptedBy, now, now, id, string(domain.InvitationPending))
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitationsRepo) MarkCancelled(ctx context.Context, id, cancelledBy string) error {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx,
		`UPDATE invitations
		 SET status = ?, cancelled_by = ?, cancelled_at = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		string(domain.InvitationCancelled), cancelledBy, now, now, id, string(domain.InvitationPending))
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitationsRepo) CountExpiredPending(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invitations WHERE status = ? AND expires_at < ?`,
		string(domain.InvitationPending), now.UTC()).Scan(&n)
	return n, err
}
