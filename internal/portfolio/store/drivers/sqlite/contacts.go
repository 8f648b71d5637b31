package sqlite

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type contactsRepo struct {
	q querier
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.ContactMessage) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Message, time.Now().UTC())
	return err
}

func (r *contactsRepo) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *contactsRepo) DeleteContactsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM contact_messages WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
