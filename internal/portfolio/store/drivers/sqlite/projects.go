package sqlite

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
)

type projectsRepo struct {
	q querier
}

const projectColumns = `id, title, description, image_url, link_url, tags, created_at, updated_at`

func scanProject(row rowScanner) (domain.Project, error) {
	var (
		p    domain.Project
		tags string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.LinkURL, &tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	p.Tags, err = unmarshalTags(tags)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	return scanProject(r.q.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	tags, err := marshalTags(p.Tags)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, image_url, link_url, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.ImageURL, p.LinkURL, tags, now, now)
	return err
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	tags, err := marshalTags(p.Tags)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx,
		`UPDATE projects SET title = ?, description = ?, image_url = ?, link_url = ?, tags = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, p.Description, p.ImageURL, p.LinkURL, tags, time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
