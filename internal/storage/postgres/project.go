package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"newsdigest/internal/domain"
)

type ProjectStore struct {
	db *sqlx.DB
}

func NewProjectStore(db *sqlx.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) All(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetOrCreate resolves a project name to its id, creating the row on
// first sight.
func (s *ProjectStore) GetOrCreate(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO projects (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		name).Scan(&id)
	return id, err
}
