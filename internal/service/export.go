package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ExportService dumps records as JSON for external ML tooling.
type ExportService struct {
	records  RecordStore
	keywords KeywordStore
	logger   *slog.Logger
}

func NewExportService(records RecordStore, keywords KeywordStore, logger *slog.Logger) *ExportService {
	return &ExportService{records: records, keywords: keywords, logger: logger}
}

type exportKeyword struct {
	Name    string `json:"name"`
	FOSS    bool   `json:"foss"`
	Generic bool   `json:"generic"`
}

type exportItem struct {
	ID           int64           `json:"id"`
	Datetime     *time.Time      `json:"datetime"`
	DigestNumber *int            `json:"digest_number"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	Keywords     []exportKeyword `json:"keywords"`
	Language     string          `json:"language"`
	URL          string          `json:"url"`
}

// Dump writes the export as a JSON array: IN_DIGEST records only, or
// every record when all is set. Returns how many records were written.
func (s *ExportService) Dump(ctx context.Context, w io.Writer, all bool) (int, error) {
	records, err := s.records.ListForExport(ctx, all)
	if err != nil {
		return 0, fmt.Errorf("list records: %w", err)
	}

	items := make([]exportItem, 0, len(records))
	for _, rec := range records {
		keywords, err := s.exportKeywords(ctx, rec.Record.ID)
		if err != nil {
			return 0, err
		}

		description := rec.Record.Description
		if rec.Record.ClearedDescription != nil {
			description = rec.Record.ClearedDescription
		}

		items = append(items, exportItem{
			ID:           rec.Record.ID,
			Datetime:     rec.Record.Timestamp,
			DigestNumber: rec.IssueNumber,
			Title:        rec.Record.Title,
			Description:  description,
			Type:         string(rec.Record.ContentType),
			Category:     string(rec.Record.ContentCategory),
			Keywords:     keywords,
			Language:     string(rec.Record.Language),
			URL:          rec.Record.URL,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return 0, fmt.Errorf("encode export: %w", err)
	}

	s.logger.Info("export completed", "records", len(items), "all", all)
	return len(items), nil
}

func (s *ExportService) exportKeywords(ctx context.Context, recordID int64) ([]exportKeyword, error) {
	ids, err := s.records.KeywordIDs(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("load keyword links for record %d: %w", recordID, err)
	}

	rows, err := s.keywords.ByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load keywords for record %d: %w", recordID, err)
	}

	keywords := make([]exportKeyword, 0, len(rows))
	for _, kw := range rows {
		keywords = append(keywords, exportKeyword{
			Name:    kw.Name,
			FOSS:    !kw.Proprietary,
			Generic: kw.IsGeneric,
		})
	}
	return keywords, nil
}
