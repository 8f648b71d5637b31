package sqlite

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type socialLinksRepo struct {
	q querier
}

func (r *socialLinksRepo) ListSocialLinks(ctx context.Context) ([]domain.SocialLink, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, platform, icon, url, created_at, updated_at FROM social_links ORDER BY platform`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.Icon, &l.URL, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *socialLinksRepo) GetSocialLinkByID(ctx context.Context, id string) (domain.SocialLink, error) {
	var l domain.SocialLink
	err := r.q.QueryRowContext(ctx,
		`SELECT id, platform, icon, url, created_at, updated_at FROM social_links WHERE id = ?`, id).
		Scan(&l.ID, &l.Platform, &l.Icon, &l.URL, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.SocialLink{}, mapNotFound(err)
	}
	return l, nil
}

func (r *socialLinksRepo) CreateSocialLink(ctx context.Context, l domain.SocialLink) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO social_links (id, platform, icon, url, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.Platform, l.Icon, l.URL, now, now)
	return err
}

func (r *socialLinksRepo) UpdateSocialLink(ctx context.Context, l domain.SocialLink) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE social_links SET platform = ?, icon = ?, url = ?, updated_at = ? WHERE id = ?`,
		l.Platform, l.Icon, l.URL, time.Now().UTC(), l.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *socialLinksRepo) DeleteSocialLink(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM social_links WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
