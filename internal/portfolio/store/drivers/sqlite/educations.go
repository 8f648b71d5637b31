package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type educationsRepo struct {
	q querier
}

const educationColumns = `id, degree, institution, start_date, end_date, link_url, certificate_url, created_at, updated_at`

func scanEducation(row rowScanner) (domain.Education, error) {
	var (
		e   domain.Education
		end sql.NullTime
	)
	err := row.Scan(&e.ID, &e.Degree, &e.Institution, &e.StartDate, &end, &e.LinkURL, &e.CertificateURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Education{}, mapNotFound(err)
	}
	e.EndDate = mapNullTimePtr(end)
	return e, nil
}

func (r *educationsRepo) ListEducations(ctx context.Context) ([]domain.Education, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+educationColumns+` FROM educations ORDER BY end_date IS NOT NULL, start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edus []domain.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		edus = append(edus, e)
	}
	return edus, rows.Err()
}

func (r *educationsRepo) GetEducationByID(ctx context.Context, id string) (domain.Education, error) {
	return scanEducation(r.q.QueryRowContext(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE id = ?`, id))
}

func (r *educationsRepo) CreateEducation(ctx context.Context, e domain.Education) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO educations (id, degree, institution, start_date, end_date, link_url, certificate_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Degree, e.Institution, e.StartDate.UTC(), mapOptionalTime(e.EndDate), e.LinkURL, e.CertificateURL, now, now)
	return err
}

func (r *educationsRepo) UpdateEducation(ctx context.Context, e domain.Education) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE educations SET degree = ?, institution = ?, start_date = ?, end_date = ?, link_url = ?, certificate_url = ?, updated_at = ?
		 WHERE id = ?`,
		e.Degree, e.Institution, e.StartDate.UTC(), mapOptionalTime(e.EndDate), e.LinkURL, e.CertificateURL, time.Now().UTC(), e.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *educationsRepo) DeleteEducation(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM educations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
