package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"newsdigest/internal/domain"
	"newsdigest/internal/pipeline"
)

// RetagService recomputes every record's keyword links against the
// current keyword table. Idempotent: a second run right after the first
// changes nothing.
type RetagService struct {
	records  RecordStore
	keywords KeywordStore
	logger   *slog.Logger
}

func NewRetagService(records RecordStore, keywords KeywordStore, logger *slog.Logger) *RetagService {
	return &RetagService{records: records, keywords: keywords, logger: logger}
}

// Run walks all records and rewrites keyword links where the recomputed
// set differs from the stored one. Returns how many records changed.
func (s *RetagService) Run(ctx context.Context) (int, error) {
	keywords, err := s.keywords.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load keywords: %w", err)
	}

	titles, err := s.records.ListTitles(ctx)
	if err != nil {
		return 0, fmt.Errorf("list records: %w", err)
	}

	s.logger.Info("starting full re-tag", "records", len(titles), "keywords", len(keywords))

	changed := 0
	for _, record := range titles {
		want := matchKeywordIDs(record.Title, keywords)

		have, err := s.records.KeywordIDs(ctx, record.ID)
		if err != nil {
			return changed, fmt.Errorf("load keyword links for record %d: %w", record.ID, err)
		}

		if equalIDs(want, have) {
			continue
		}

		if err := s.records.SetKeywords(ctx, record.ID, want); err != nil {
			return changed, fmt.Errorf("update keyword links for record %d: %w", record.ID, err)
		}
		changed++
		s.logger.Debug("re-tagged record", "record_id", record.ID, "keywords", len(want))
	}

	s.logger.Info("full re-tag completed", "changed", changed)
	return changed, nil
}

func matchKeywordIDs(title string, keywords []domain.Keyword) []int64 {
	var ids []int64
	for _, kw := range keywords {
		if !kw.Enabled {
			continue
		}
		if pipeline.FindKeywordInTitle(kw.Name, title) {
			ids = append(ids, kw.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
