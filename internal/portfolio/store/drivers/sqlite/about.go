package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
)

type aboutRepo struct {
	q querier
}

const aboutColumns = `id, full_name, first_name, last_name, title, summary, email, phone, address, picture_url, resume_url, created_at, updated_at`

func (r *aboutRepo) GetAbout(ctx context.Context) (domain.About, error) {
	var a domain.About
	err := r.q.QueryRowContext(ctx,
		`SELECT `+aboutColumns+` FROM about LIMIT 1`).
		Scan(&a.ID, &a.FullName, &a.FirstName, &a.LastName, &a.Title, &a.Summary,
			&a.Email, &a.Phone, &a.Address, &a.PictureURL, &a.ResumeURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.About{}, mapNotFound(err)
	}
	return a, nil
}

// UpsertAbout keeps the table a singleton: the first write inserts, every
// later write updates the existing row in place and preserves its id.
func (r *aboutRepo) UpsertAbout(ctx context.Context, a domain.About) (domain.About, error) {
	existing, err := r.GetAbout(ctx)
	now := time.Now().UTC()
	if err == nil {
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
		a.UpdatedAt = now
		_, err = r.q.ExecContext(ctx,
			`UPDATE about SET full_name = ?, first_name = ?, last_name = ?, title = ?, summary = ?,
			        email = ?, phone = ?, address = ?, picture_url = ?, resume_url = ?, updated_at = ?
			 WHERE id = ?`,
			a.FullName, a.FirstName, a.LastName, a.Title, a.Summary,
			a.Email, a.Phone, a.Address, a.PictureURL, a.ResumeURL, now, a.ID)
		return a, err
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.About{}, err
	}

	a.CreatedAt = now
	a.UpdatedAt = now
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO about (`+aboutColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.FullName, a.FirstName, a.LastName, a.Title, a.Summary,
		a.Email, a.Phone, a.Address, a.PictureURL, a.ResumeURL, now, now)
	return a, err
}
