package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type experiencesRepo struct {
	q querier
}

const experienceColumns = `id, job_title, company, logo_url, start_date, end_date, description, created_at, updated_at`

func scanExperience(row rowScanner) (domain.Experience, error) {
	var (
		e   domain.Experience
		end sql.NullTime
	)
	err := row.Scan(&e.ID, &e.JobTitle, &e.Company, &e.LogoURL, &e.StartDate, &end, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Experience{}, mapNotFound(err)
	}
	e.EndDate = mapNullTimePtr(end)
	return e, nil
}

func (r *experiencesRepo) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	// Current positions (NULL end_date) sort first, then most recent.
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences ORDER BY end_date IS NOT NULL, start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exps []domain.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return exps, rows.Err()
}

func (r *experiencesRepo) GetExperienceByID(ctx context.Context, id string) (domain.Experience, error) {
	return scanExperience(r.q.QueryRowContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id))
}

func (r *experiencesRepo) CreateExperience(ctx context.Context, e domain.Experience) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO experiences (id, job_title, company, logo_url, start_date, end_date, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.JobTitle, e.Company, e.LogoURL, e.StartDate.UTC(), mapOptionalTime(e.EndDate), e.Description, now, now)
	return err
}

func (r *experiencesRepo) UpdateExperience(ctx context.Context, e domain.Experience) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE experiences SET job_title = ?, company = ?, logo_url = ?, start_date = ?, end_date = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		e.JobTitle, e.Company, e.LogoURL, e.StartDate.UTC(), mapOptionalTime(e.EndDate), e.Description, time.Now().UTC(), e.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *experiencesRepo) DeleteExperience(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
