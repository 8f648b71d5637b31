package sqlite

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type testimonialsRepo struct {
	q querier
}

const testimonialColumns = `id, name, feedback, company, position, rating, image_url, created_at, updated_at`

func scanTestimonial(row rowScanner) (domain.Testimonial, error) {
	var t domain.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Feedback, &t.Company, &t.Position, &t.Rating, &t.ImageURL, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Testimonial{}, mapNotFound(err)
	}
	return t, nil
}

func (r *testimonialsRepo) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ts []domain.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, rows.Err()
}

func (r *testimonialsRepo) GetTestimonialByID(ctx context.Context, id string) (domain.Testimonial, error) {
	return scanTestimonial(r.q.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id))
}

func (r *testimonialsRepo) CreateTestimonial(ctx context.Context, t domain.Testimonial) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO testimonials (id, name, feedback, company, position, rating, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Feedback, t.Company, t.Position, t.Rating, t.ImageURL, now, now)
	return err
}

func (r *testimonialsRepo) UpdateTestimonial(ctx context.Context, t domain.Testimonial) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE testimonials SET name = ?, feedback = ?, company = ?, position = ?, rating = ?, image_url = ?, updated_at = ?
		 WHERE id = ?`,
		t.Name, t.Feedback, t.Company, t.Position, t.Rating, t.ImageURL, time.Now().UTC(), t.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *testimonialsRepo) DeleteTestimonial(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
