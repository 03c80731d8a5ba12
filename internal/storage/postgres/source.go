package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsdigest/internal/domain"
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

type sourceRow struct {
	ID                  int64         `db:"id"`
	Name                string        `db:"name"`
	Enabled             bool          `db:"enabled"`
	DataURL             *string       `db:"data_url"`
	Language            string        `db:"language"`
	TextFetchingEnabled bool          `db:"text_fetching_enabled"`
	ProjectIDs          pq.Int64Array `db:"project_ids"`
}

func (r sourceRow) toDomain() domain.Source {
	return domain.Source{
		ID:                  r.ID,
		Name:                r.Name,
		Enabled:             r.Enabled,
		DataURL:             r.DataURL,
		Language:            domain.Language(r.Language),
		TextFetchingEnabled: r.TextFetchingEnabled,
		ProjectIDs:          []int64(r.ProjectIDs),
	}
}

const sourceSelect = `
	SELECT s.id, s.name, s.enabled, s.data_url, s.language, s.text_fetching_enabled,
	       COALESCE(array_agg(sp.project_id) FILTER (WHERE sp.project_id IS NOT NULL), '{}') AS project_ids
	FROM sources s
	LEFT JOIN source_projects sp ON sp.source_id = s.id`

func (s *SourceStore) All(ctx context.Context) ([]domain.Source, error) {
	var rows []sourceRow
	err := s.db.SelectContext(ctx, &rows, sourceSelect+` GROUP BY s.id ORDER BY s.name`)
	if err != nil {
		return nil, err
	}
	return toDomainSources(rows), nil
}

func (s *SourceStore) ByNames(ctx context.Context, names []string) ([]domain.Source, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var rows []sourceRow
	err := s.db.SelectContext(ctx, &rows,
		sourceSelect+` WHERE s.name = ANY($1) GROUP BY s.id ORDER BY s.name`,
		pq.Array(names))
	if err != nil {
		return nil, err
	}
	return toDomainSources(rows), nil
}

func (s *SourceStore) ByProject(ctx context.Context, project string) ([]domain.Source, error) {
	var rows []sourceRow
	err := s.db.SelectContext(ctx, &rows, `
	SELECT s.id, s.name, s.enabled, s.data_url, s.language, s.text_fetching_enabled,
	       COALESCE(array_agg(sp.project_id) FILTER (WHERE sp.project_id IS NOT NULL), '{}') AS project_ids
	FROM sources s
	LEFT JOIN source_projects sp ON sp.source_id = s.id
	WHERE s.id IN (
		SELECT sp2.source_id FROM source_projects sp2
		JOIN projects p ON p.id = sp2.project_id
		WHERE p.name = $1
	)
	GROUP BY s.id ORDER BY s.name`, project)
	if err != nil {
		return nil, err
	}
	return toDomainSources(rows), nil
}

func (s *SourceStore) ByName(ctx context.Context, name string) (*domain.Source, error) {
	var row sourceRow
	err := s.db.GetContext(ctx, &row,
		sourceSelect+` WHERE s.name = $1 GROUP BY s.id`, name)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	src := row.toDomain()
	return &src, nil
}

// Upsert writes one source definition and replaces its project links.
func (s *SourceStore) Upsert(ctx context.Context, src *domain.Source) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO sources (name, enabled, data_url, language, text_fetching_enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			data_url = EXCLUDED.data_url,
			language = EXCLUDED.language,
			text_fetching_enabled = EXCLUDED.text_fetching_enabled
		RETURNING id`,
		src.Name, src.Enabled, src.DataURL, string(src.Language), src.TextFetchingEnabled,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM source_projects WHERE source_id = $1`, id); err != nil {
		return 0, err
	}
	if len(src.ProjectIDs) > 0 {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO source_projects (source_id, project_id)
			SELECT $1, unnest($2::bigint[])
			ON CONFLICT DO NOTHING`,
			id, pq.Array(src.ProjectIDs)); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func toDomainSources(rows []sourceRow) []domain.Source {
	sources := make([]domain.Source, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, row.toDomain())
	}
	return sources
}
