package service

import (
	"context"
	"fmt"
	"log/slog"

	"newsdigest/internal/domain"
)

// TextFetchService pulls the full body text for one record at a time:
// either an explicit record id, or a random record lacking text from a
// source with text fetching enabled.
type TextFetchService struct {
	records   RecordStore
	sources   SourceStore
	extractor TextExtractor
	logger    *slog.Logger
}

func NewTextFetchService(records RecordStore, sources SourceStore, extractor TextExtractor, logger *slog.Logger) *TextFetchService {
	return &TextFetchService{
		records:   records,
		sources:   sources,
		extractor: extractor,
		logger:    logger,
	}
}

// FetchByID fetches the text for one specific record.
func (s *TextFetchService) FetchByID(ctx context.Context, id int64) (*domain.DigestRecord, string, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("load record %d: %w", id, err)
	}
	text, err := s.fetch(ctx, record)
	return record, text, err
}

// FetchRandom picks a random record without text, optionally narrowed to
// one source by name, and fetches its text. An empty pool surfaces as
// ErrNothingToDo.
func (s *TextFetchService) FetchRandom(ctx context.Context, sourceName string) (*domain.DigestRecord, string, error) {
	var sourceID *int64
	if sourceName != "" {
		src, err := s.sources.ByName(ctx, sourceName)
		if err != nil {
			return nil, "", fmt.Errorf("load source %q: %w", sourceName, err)
		}
		sourceID = &src.ID
	}

	record, err := s.records.RandomWithoutText(ctx, sourceID)
	if err != nil {
		return nil, "", err
	}
	text, err := s.fetch(ctx, record)
	return record, text, err
}

// Save persists a fetched text on its record.
func (s *TextFetchService) Save(ctx context.Context, recordID int64, text string) error {
	if err := s.records.SetText(ctx, recordID, text); err != nil {
		return fmt.Errorf("save text for record %d: %w", recordID, err)
	}
	s.logger.Info("saved record text", "record_id", recordID, "length", len(text))
	return nil
}

func (s *TextFetchService) fetch(ctx context.Context, record *domain.DigestRecord) (string, error) {
	s.logger.Info("fetching record text", "record_id", record.ID, "url", record.URL)
	text, err := s.extractor.Extract(ctx, record.URL)
	if err != nil {
		return "", fmt.Errorf("fetch text for record %d: %w", record.ID, err)
	}
	return text, nil
}
