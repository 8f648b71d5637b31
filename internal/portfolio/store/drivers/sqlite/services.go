package sqlite

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type servicesRepo struct {
	q querier
}

func (r *servicesRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, description, icon, created_at, updated_at FROM services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var svcs []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Icon, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		svcs = append(svcs, s)
	}
	return svcs, rows.Err()
}

func (r *servicesRepo) GetServiceByID(ctx context.Context, id string) (domain.Service, error) {
	var s domain.Service
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, description, icon, created_at, updated_at FROM services WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Icon, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Service{}, mapNotFound(err)
	}
	return s, nil
}

func (r *servicesRepo) CreateService(ctx context.Context, s domain.Service) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO services (id, name, description, icon, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Description, s.Icon, now, now)
	return err
}

func (r *servicesRepo) UpdateService(ctx context.Context, s domain.Service) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE services SET name = ?, description = ?, icon = ?, updated_at = ? WHERE id = ?`,
		s.Name, s.Description, s.Icon, time.Now().UTC(), s.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *servicesRepo) DeleteService(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
