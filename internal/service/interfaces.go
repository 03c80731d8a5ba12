package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newsdigest/internal/domain"
	"newsdigest/internal/source"
)

type RecordStore interface {
	Create(ctx context.Context, record *domain.DigestRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.DigestRecord, error)
	ExistingByURLs(ctx context.Context, urls []string) (map[string]domain.RecordStub, error)
	BackfillTimestamp(ctx context.Context, id int64, ts time.Time) (bool, error)
	UpdateState(ctx context.Context, id int64, state domain.RecordState) error
	SetText(ctx context.Context, id int64, text string) error
	SetKeywords(ctx context.Context, recordID int64, keywordIDs []int64) error
	SetProjects(ctx context.Context, recordID int64, projectIDs []int64) error
	KeywordIDs(ctx context.Context, recordID int64) ([]int64, error)
	ListTitles(ctx context.Context) ([]domain.RecordTitle, error)
	EligibleForReview(ctx context.Context, project string, since time.Time) ([]int64, error)
	RandomWithoutText(ctx context.Context, sourceID *int64) (*domain.DigestRecord, error)
	ListForExport(ctx context.Context, all bool) ([]domain.ExportRecord, error)
}

type KeywordStore interface {
	All(ctx context.Context) ([]domain.Keyword, error)
	ByName(ctx context.Context, name string) ([]domain.Keyword, error)
	ByIDs(ctx context.Context, ids []int64) ([]domain.Keyword, error)
	Upsert(ctx context.Context, kw *domain.Keyword) error
}

type SourceStore interface {
	All(ctx context.Context) ([]domain.Source, error)
	ByNames(ctx context.Context, names []string) ([]domain.Source, error)
	ByProject(ctx context.Context, project string) ([]domain.Source, error)
	ByName(ctx context.Context, name string) (*domain.Source, error)
	Upsert(ctx context.Context, src *domain.Source) (int64, error)
}

type ProjectStore interface {
	GetOrCreate(ctx context.Context, name string) (int64, error)
}

type IterationStore interface {
	Create(ctx context.Context, it *domain.GatheringIteration) (int64, error)
}

type AttemptStore interface {
	Create(ctx context.Context, a *domain.CategorizationAttempt) (int64, error)
	DistinctReviewerCounts(ctx context.Context, recordIDs []int64) (map[int64]int, error)
	RecordIDsAttemptedBy(ctx context.Context, reviewerID int64) ([]int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, record *domain.DigestRecord) error
	Close() error
}

// ParserRegistry resolves a stored source row to its adapter.
type ParserRegistry interface {
	Create(src domain.Source, opts source.Options) (source.Parser, error)
}

type TextExtractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}
