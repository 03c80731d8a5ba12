package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"newsdigest/internal/domain"
)

type IterationStore struct {
	db *sqlx.DB
}

func NewIterationStore(db *sqlx.DB) *IterationStore {
	return &IterationStore{db: db}
}

// Create writes one audit row for a source's gathering run. Rows are
// written for disabled and failed sources too, so the audit trail shows
// why a source produced nothing.
func (s *IterationStore) Create(ctx context.Context, it *domain.GatheringIteration) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO gathering_iterations (
			ts, source_id, overall_count, gathered_count, saved_count,
			source_enabled, source_error, parser_error
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		it.Timestamp,
		it.SourceID,
		it.OverallCount,
		it.GatheredCount,
		it.SavedCount,
		it.SourceEnabled,
		it.SourceError,
		it.ParserError,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
