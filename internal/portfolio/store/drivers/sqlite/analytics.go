package sqlite

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type analyticsRepo struct {
	q querier
}

// Summary gathers the dashboard counters in a single round trip.
func (r *analyticsRepo) Summary(ctx context.Context, since time.Time) (domain.AnalyticsSummary, error) {
	var s domain.AnalyticsSummary
	err := r.q.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(1) FROM projects),
			(SELECT COUNT(1) FROM skills),
			(SELECT COUNT(1) FROM experiences),
			(SELECT COUNT(1) FROM contact_messages),
			(SELECT COUNT(1) FROM testimonials),
			(SELECT COUNT(1) FROM contact_messages WHERE created_at >= ?),
			(SELECT COUNT(1) FROM projects WHERE created_at >= ?)`,
		since.UTC(), since.UTC()).
		Scan(&s.TotalProjects, &s.TotalSkills, &s.TotalExperiences, &s.TotalContacts,
			&s.TotalTestimonials, &s.RecentContacts, &s.RecentProjects)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}
	return s, nil
}
