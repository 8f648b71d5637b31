package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
)

type settingsRepo struct {
	q querier
}

const settingColumns = `id, site_name, description, keywords, author, email, phone, address, copyright, logo_url, favicon_url, social_urls, created_at, updated_at`

func (r *settingsRepo) GetSetting(ctx context.Context) (domain.Setting, error) {
	var (
		s      domain.Setting
		social string
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT `+settingColumns+` FROM settings LIMIT 1`).
		Scan(&s.ID, &s.SiteName, &s.Description, &s.Keywords, &s.Author, &s.Email,
			&s.Phone, &s.Address, &s.Copyright, &s.LogoURL, &s.FaviconURL, &social, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Setting{}, mapNotFound(err)
	}
	s.SocialURLs, err = unmarshalSocialURLs(social)
	if err != nil {
		return domain.Setting{}, err
	}
	return s, nil
}

// UpsertSetting keeps the table a singleton, mirroring UpsertAbout.
func (r *settingsRepo) UpsertSetting(ctx context.Context, s domain.Setting) (domain.Setting, error) {
	social, err := marshalSocialURLs(s.SocialURLs)
	if err != nil {
		return domain.Setting{}, err
	}

	existing, err := r.GetSetting(ctx)
	now := time.Now().UTC()
	if err == nil {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
		s.UpdatedAt = now
		_, err = r.q.ExecContext(ctx,
			`UPDATE settings SET site_name = ?, description = ?, keywords = ?, author = ?, email = ?,
			        phone = ?, address = ?, copyright = ?, logo_url = ?, favicon_url = ?, social_urls = ?, updated_at = ?
			 WHERE id = ?`,
			s.SiteName, s.Description, s.Keywords, s.Author, s.Email,
			s.Phone, s.Address, s.Copyright, s.LogoURL, s.FaviconURL, social, now, s.ID)
		return s, err
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Setting{}, err
	}

	s.CreatedAt = now
	s.UpdatedAt = now
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO settings (`+settingColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.SiteName, s.Description, s.Keywords, s.Author, s.Email,
		s.Phone, s.Address, s.Copyright, s.LogoURL, s.FaviconURL, social, now, now)
	return s, err
}
