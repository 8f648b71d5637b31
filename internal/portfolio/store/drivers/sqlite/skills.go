package sqlite

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type skillsRepo struct {
	q querier
}

func (r *skillsRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, proficiency, created_at, updated_at FROM skills ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Proficiency, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillsRepo) GetSkillByID(ctx context.Context, id string) (domain.Skill, error) {
	var s domain.Skill
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, proficiency, created_at, updated_at FROM skills WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Proficiency, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Skill{}, mapNotFound(err)
	}
	return s, nil
}

func (r *skillsRepo) CreateSkill(ctx context.Context, s domain.Skill) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO skills (id, name, proficiency, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Proficiency, now, now)
	return err
}

func (r *skillsRepo) UpdateSkill(ctx context.Context, s domain.Skill) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE skills SET name = ?, proficiency = ?, updated_at = ? WHERE id = ?`,
		s.Name, s.Proficiency, time.Now().UTC(), s.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *skillsRepo) DeleteSkill(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
