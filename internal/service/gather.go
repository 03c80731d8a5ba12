package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"newsdigest/internal/config"
	"newsdigest/internal/domain"
	"newsdigest/internal/pipeline"
	"newsdigest/internal/source"
	"newsdigest/internal/textfetch"
)

// SelectorAll gathers every enabled source.
const SelectorAll = "ALL"

// GatherService runs the gathering pipeline: fetch and parse each
// selected source, filter and tag the posts, then reconcile them into
// digest records. Each record's save is its own transaction; a run that
// fails partway keeps everything already reconciled.
type GatherService struct {
	sources    SourceStore
	keywords   KeywordStore
	records    RecordStore
	iterations IterationStore
	registry   ParserRegistry
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	config     config.GatherConfig
	now        func() time.Time
}

func NewGatherService(
	sources SourceStore,
	keywords KeywordStore,
	records RecordStore,
	iterations IterationStore,
	registry ParserRegistry,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.GatherConfig,
) *GatherService {
	return &GatherService{
		sources:    sources,
		keywords:   keywords,
		records:    records,
		iterations: iterations,
		registry:   registry,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
		config:     cfg,
		now:        time.Now,
	}
}

// Gather runs the pipeline for the selected sources. The selector is
// "ALL", a project name, or a comma-separated list of source names. A
// non-positive days falls back to the configured default.
func (s *GatherService) Gather(ctx context.Context, selector string, days int) ([]domain.GatherStats, error) {
	if days <= 0 {
		days = s.config.DaysCount
	}

	sources, err := s.resolveSources(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("resolve sources: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("selector %q matched no sources", selector)
	}

	keywords, err := s.keywords.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load keywords: %w", err)
	}

	s.logger.Info("starting gathering run",
		"selector", selector,
		"sources", len(sources),
		"days", days,
	)

	stats := make([]domain.GatherStats, 0, len(sources))
	for _, src := range sources {
		stats = append(stats, s.gatherSource(ctx, src, keywords, days))
	}

	return stats, nil
}

func (s *GatherService) resolveSources(ctx context.Context, selector string) ([]domain.Source, error) {
	if selector == SelectorAll {
		return s.sources.All(ctx)
	}

	byProject, err := s.sources.ByProject(ctx, selector)
	if err != nil {
		return nil, err
	}
	if len(byProject) > 0 {
		return byProject, nil
	}

	names := strings.Split(selector, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return s.sources.ByNames(ctx, names)
}

func (s *GatherService) gatherSource(ctx context.Context, src domain.Source, keywords []domain.Keyword, days int) domain.GatherStats {
	start := s.now()
	logger := s.logger.With("source", src.Name)
	stats := domain.GatherStats{SourceName: src.Name}

	iteration := &domain.GatheringIteration{
		Timestamp:     start,
		SourceID:      src.ID,
		SourceEnabled: src.Enabled,
	}
	defer func() {
		stats.Duration = s.now().Sub(start)
		if _, err := s.iterations.Create(ctx, iteration); err != nil {
			logger.Error("failed to save gathering iteration", "error", err)
		}
	}()

	if !src.Enabled {
		logger.Info("source disabled, skipping")
		return stats
	}

	parser, err := s.registry.Create(src, source.Options{
		HTTPClient: &http.Client{Timeout: s.config.HTTPTimeout},
		UserAgent:  s.config.UserAgent,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("no adapter for source", "error", err)
		msg := err.Error()
		iteration.ParserError = &msg
		stats.Errors++
		return stats
	}

	posts, err := parser.FetchAndParse(ctx)
	if err != nil {
		msg := err.Error()
		var srcErr *source.SourceError
		var parseErr *source.ParseError
		switch {
		case errors.As(err, &srcErr):
			logger.Error("source fetch failed", "error", err)
			iteration.SourceError = &msg
		case errors.As(err, &parseErr):
			logger.Error("source content unparseable", "error", err)
			iteration.ParserError = &msg
		default:
			logger.Error("source fetch failed", "error", err)
			iteration.SourceError = &msg
		}
		stats.Errors++
		return stats
	}

	stats.Fetched = len(posts)
	iteration.OverallCount = len(posts)
	logger.Info("fetched posts", "count", len(posts))

	existing, err := s.records.ExistingByURLs(ctx, postURLs(posts))
	if err != nil {
		logger.Error("failed to look up existing records", "error", err)
		msg := err.Error()
		iteration.ParserError = &msg
		stats.Errors++
		return stats
	}

	s.backfillDates(ctx, posts, existing, logger, &stats)

	posts = pipeline.FilterOld(posts, days, s.now(), logger)
	posts = pipeline.MarkFiltered(posts, keywords, parser.Filtration(), logger)
	posts = pipeline.Tag(posts, keywords)

	stats.Gathered = len(posts)
	iteration.GatheredCount = len(posts)

	byName := keywordsByName(keywords)

	for i := range posts {
		post := &posts[i]

		if _, ok := existing[post.URL]; ok {
			stats.AlreadyExisting++
			continue
		}

		record, err := s.saveRecord(ctx, src, post, byName, logger)
		if errors.Is(err, domain.ErrDuplicateURL) {
			logger.Debug("record already exists", "url", post.URL)
			stats.AlreadyExisting++
			continue
		}
		if err != nil {
			logger.Error("failed to save record", "url", post.URL, "error", err)
			stats.Errors++
			continue
		}
		stats.Saved++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, record); err != nil {
				logger.Error("failed to publish record", "url", post.URL, "error", err)
			}
		}
	}

	iteration.SavedCount = stats.Saved

	logger.Info("source gathering completed",
		"fetched", stats.Fetched,
		"gathered", stats.Gathered,
		"saved", stats.Saved,
		"already_existing", stats.AlreadyExisting,
		"dates_backfilled", stats.DatesBackfilled,
		"errors", stats.Errors,
	)

	return stats
}

// backfillDates repairs stored records that were first seen without a
// date, using the date from the current appearance of the same URL.
func (s *GatherService) backfillDates(ctx context.Context, posts []domain.Post, existing map[string]domain.RecordStub, logger *slog.Logger, stats *domain.GatherStats) {
	for i := range posts {
		post := &posts[i]
		if post.Timestamp == nil {
			continue
		}
		stub, ok := existing[post.URL]
		if !ok || stub.HasTimestamp {
			continue
		}
		updated, err := s.records.BackfillTimestamp(ctx, stub.ID, *post.Timestamp)
		if err != nil {
			logger.Error("failed to backfill record date", "url", post.URL, "error", err)
			continue
		}
		if updated {
			logger.Info("backfilled record date", "url", post.URL, "timestamp", *post.Timestamp)
			stats.DatesBackfilled++
		}
	}
}

func (s *GatherService) saveRecord(ctx context.Context, src domain.Source, post *domain.Post, byName map[string][]domain.Keyword, logger *slog.Logger) (*domain.DigestRecord, error) {
	keywordIDs := s.resolveKeywordIDs(post.Keywords, byName, logger)

	record := &domain.DigestRecord{
		Title:           post.Title,
		URL:             post.URL,
		Timestamp:       post.Timestamp,
		GatherTimestamp: s.now(),
		State:           initialState(post, byName),
		ContentType:     domain.TypeUnknown,
		ContentCategory: domain.CategoryUnknown,
		Language:        src.Language,
		Description:     post.Brief,
		SourceID:        src.ID,
		KeywordIDs:      keywordIDs,
		ProjectIDs:      src.ProjectIDs,
	}
	if post.Brief != nil {
		cleared := textfetch.StripHTML(*post.Brief)
		record.ClearedDescription = &cleared
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.records.Create(txCtx, record)
		if err != nil {
			return err
		}
		record.ID = id

		if len(keywordIDs) > 0 {
			if err := s.records.SetKeywords(txCtx, id, keywordIDs); err != nil {
				return fmt.Errorf("link keywords: %w", err)
			}
		}
		if len(src.ProjectIDs) > 0 {
			if err := s.records.SetProjects(txCtx, id, src.ProjectIDs); err != nil {
				return fmt.Errorf("link projects: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// resolveKeywordIDs maps tag names back to keyword rows. A name with no
// row or with several rows is a data-integrity problem: logged and
// skipped, never guessed.
func (s *GatherService) resolveKeywordIDs(names []string, byName map[string][]domain.Keyword, logger *slog.Logger) []int64 {
	var ids []int64
	for _, name := range names {
		rows := byName[name]
		switch len(rows) {
		case 0:
			logger.Error("tagged keyword not found in keyword table", "keyword", name)
		case 1:
			ids = append(ids, rows[0].ID)
		default:
			logger.Error("tagged keyword is ambiguous in keyword table",
				"keyword", name, "rows", len(rows))
		}
	}
	return ids
}

// initialState decides a new record's lifecycle state. Filtered posts
// land as FILTERED; posts whose matched enabled keywords are all
// proprietary (with at least one match) land as SKIPPED; everything else
// awaits categorization as UNKNOWN.
func initialState(post *domain.Post, byName map[string][]domain.Keyword) domain.RecordState {
	if post.Filtered {
		return domain.StateFiltered
	}

	matched := 0
	for _, name := range post.Keywords {
		for _, kw := range byName[name] {
			if !kw.Enabled {
				continue
			}
			matched++
			if !kw.Proprietary {
				return domain.StateUnknown
			}
		}
	}
	if matched > 0 {
		return domain.StateSkipped
	}
	return domain.StateUnknown
}

func postURLs(posts []domain.Post) []string {
	urls := make([]string, 0, len(posts))
	for _, post := range posts {
		urls = append(urls, post.URL)
	}
	return urls
}

func keywordsByName(keywords []domain.Keyword) map[string][]domain.Keyword {
	byName := make(map[string][]domain.Keyword, len(keywords))
	for _, kw := range keywords {
		byName[kw.Name] = append(byName[kw.Name], kw)
	}
	return byName
}
