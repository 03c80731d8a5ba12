package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsdigest/internal/domain"
)

type KeywordStore struct {
	db *sqlx.DB
}

func NewKeywordStore(db *sqlx.DB) *KeywordStore {
	return &KeywordStore{db: db}
}

type keywordRow struct {
	ID              int64   `db:"id"`
	Name            string  `db:"name"`
	ContentCategory *string `db:"content_category"`
	IsGeneric       bool    `db:"is_generic"`
	Proprietary     bool    `db:"proprietary"`
	Enabled         bool    `db:"enabled"`
}

func (r keywordRow) toDomain() domain.Keyword {
	kw := domain.Keyword{
		ID:          r.ID,
		Name:        r.Name,
		IsGeneric:   r.IsGeneric,
		Proprietary: r.Proprietary,
		Enabled:     r.Enabled,
	}
	if r.ContentCategory != nil {
		category := domain.ContentCategory(*r.ContentCategory)
		kw.ContentCategory = &category
	}
	return kw
}

const keywordColumns = `id, name, content_category, is_generic, proprietary, enabled`

func (s *KeywordStore) All(ctx context.Context) ([]domain.Keyword, error) {
	var rows []keywordRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT `+keywordColumns+` FROM keywords ORDER BY name, content_category`)
	if err != nil {
		return nil, err
	}
	return toDomainKeywords(rows), nil
}

// ByName returns every keyword row carrying the given name. More than
// one row per name is possible across categories; the caller decides
// whether that is acceptable.
func (s *KeywordStore) ByName(ctx context.Context, name string) ([]domain.Keyword, error) {
	var rows []keywordRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT `+keywordColumns+` FROM keywords WHERE name = $1`, name)
	if err != nil {
		return nil, err
	}
	return toDomainKeywords(rows), nil
}

func (s *KeywordStore) ByIDs(ctx context.Context, ids []int64) ([]domain.Keyword, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []keywordRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT `+keywordColumns+` FROM keywords WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return toDomainKeywords(rows), nil
}

// Upsert inserts or updates by (name, content_category). The unique
// constraint is declared NULLS NOT DISTINCT, so category-less keywords
// conflict and update in place instead of piling up duplicate rows.
func (s *KeywordStore) Upsert(ctx context.Context, kw *domain.Keyword) error {
	var category *string
	if kw.ContentCategory != nil {
		c := string(*kw.ContentCategory)
		category = &c
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO keywords (name, content_category, is_generic, proprietary, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name, content_category) DO UPDATE SET
			is_generic = EXCLUDED.is_generic,
			proprietary = EXCLUDED.proprietary,
			enabled = EXCLUDED.enabled`,
		kw.Name, category, kw.IsGeneric, kw.Proprietary, kw.Enabled)
	return err
}

func toDomainKeywords(rows []keywordRow) []domain.Keyword {
	keywords := make([]domain.Keyword, 0, len(rows))
	for _, row := range rows {
		keywords = append(keywords, row.toDomain())
	}
	return keywords
}
