//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsdigest/internal/domain"
	"newsdigest/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_sources.up.sql"),
			filepath.Join(migrationsPath, "002_create_records.up.sql"),
			filepath.Join(migrationsPath, "003_create_audit.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM categorization_attempts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM gathering_iterations")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM record_keywords")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM record_projects")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM digest_records")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM digest_issues")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM source_projects")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sources")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM keywords")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM projects")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createSource(name string, projectIDs []int64) int64 {
	store := NewSourceStore(s.db)
	id, err := store.Upsert(s.ctx, &domain.Source{
		Name:                name,
		Enabled:             true,
		Language:            domain.LanguageEnglish,
		TextFetchingEnabled: true,
		ProjectIDs:          projectIDs,
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) createRecord(sourceID int64, url string, state domain.RecordState) int64 {
	store := NewRecordStore(s.db)
	now := time.Now().Truncate(time.Microsecond)
	id, err := store.Create(s.ctx, &domain.DigestRecord{
		Title:           "Record " + url,
		URL:             url,
		Timestamp:       utils.Ptr(now),
		GatherTimestamp: now,
		State:           state,
		ContentType:     domain.TypeUnknown,
		ContentCategory: domain.CategoryUnknown,
		Language:        domain.LanguageEnglish,
		SourceID:        sourceID,
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestRecordStore_Create_DuplicateURL() {
	sourceID := s.createSource("TestSource", nil)
	store := NewRecordStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	record := &domain.DigestRecord{
		Title:           "First",
		URL:             "https://example.com/dup",
		GatherTimestamp: now,
		State:           domain.StateUnknown,
		ContentType:     domain.TypeUnknown,
		ContentCategory: domain.CategoryUnknown,
		Language:        domain.LanguageEnglish,
		SourceID:        sourceID,
	}

	id, err := store.Create(s.ctx, record)
	s.NoError(err)
	s.Greater(id, int64(0))

	record.Title = "Second"
	_, err = store.Create(s.ctx, record)
	s.ErrorIs(err, domain.ErrDuplicateURL)
}

func (s *PostgresIntegrationSuite) TestRecordStore_ExistingByURLs() {
	sourceID := s.createSource("TestSource", nil)
	store := NewRecordStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	dated := s.createRecord(sourceID, "https://example.com/dated", domain.StateUnknown)

	undatedID, err := store.Create(s.ctx, &domain.DigestRecord{
		Title:           "Undated",
		URL:             "https://example.com/undated",
		GatherTimestamp: now,
		State:           domain.StateUnknown,
		ContentType:     domain.TypeUnknown,
		ContentCategory: domain.CategoryUnknown,
		Language:        domain.LanguageEnglish,
		SourceID:        sourceID,
	})
	s.Require().NoError(err)

	existing, err := store.ExistingByURLs(s.ctx, []string{
		"https://example.com/dated",
		"https://example.com/undated",
		"https://example.com/missing",
	})
	s.NoError(err)
	s.Len(existing, 2)

	s.Equal(dated, existing["https://example.com/dated"].ID)
	s.True(existing["https://example.com/dated"].HasTimestamp)
	s.Equal(undatedID, existing["https://example.com/undated"].ID)
	s.False(existing["https://example.com/undated"].HasTimestamp)
}

func (s *PostgresIntegrationSuite) TestRecordStore_BackfillTimestamp_OnlyOnce() {
	sourceID := s.createSource("TestSource", nil)
	store := NewRecordStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	id, err := store.Create(s.ctx, &domain.DigestRecord{
		Title:           "Undated",
		URL:             "https://example.com/backfill",
		GatherTimestamp: now,
		State:           domain.StateUnknown,
		ContentType:     domain.TypeUnknown,
		ContentCategory: domain.CategoryUnknown,
		Language:        domain.LanguageEnglish,
		SourceID:        sourceID,
	})
	s.Require().NoError(err)

	updated, err := store.BackfillTimestamp(s.ctx, id, now)
	s.NoError(err)
	s.True(updated)

	// A second backfill must not overwrite the repaired date.
	updated, err = store.BackfillTimestamp(s.ctx, id, now.Add(time.Hour))
	s.NoError(err)
	s.False(updated)

	record, err := store.GetByID(s.ctx, id)
	s.NoError(err)
	s.Require().NotNil(record.Timestamp)
	s.WithinDuration(now, *record.Timestamp, time.Second)
}

func (s *PostgresIntegrationSuite) TestRecordStore_UpdateState() {
	sourceID := s.createSource("TestSource", nil)
	id := s.createRecord(sourceID, "https://example.com/state", domain.StateUnknown)
	store := NewRecordStore(s.db)

	s.NoError(store.UpdateState(s.ctx, id, domain.StateInDigest))

	record, err := store.GetByID(s.ctx, id)
	s.NoError(err)
	s.Equal(domain.StateInDigest, record.State)

	err = store.UpdateState(s.ctx, id+999, domain.StateIgnored)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestRecordStore_SetKeywords_Replaces() {
	sourceID := s.createSource("TestSource", nil)
	id := s.createRecord(sourceID, "https://example.com/kw", domain.StateUnknown)

	recordStore := NewRecordStore(s.db)
	keywordStore := NewKeywordStore(s.db)

	for _, name := range []string{"Linux", "Kubernetes", "Docker"} {
		s.Require().NoError(keywordStore.Upsert(s.ctx, &domain.Keyword{Name: name, Enabled: true}))
	}
	keywords, err := keywordStore.All(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(keywords, 3)

	s.NoError(recordStore.SetKeywords(s.ctx, id, []int64{keywords[0].ID, keywords[1].ID}))
	s.NoError(recordStore.SetKeywords(s.ctx, id, []int64{keywords[2].ID}))

	ids, err := recordStore.KeywordIDs(s.ctx, id)
	s.NoError(err)
	s.Equal([]int64{keywords[2].ID}, ids)
}

func (s *PostgresIntegrationSuite) TestRecordStore_EligibleForReview() {
	projectStore := NewProjectStore(s.db)
	projectID, err := projectStore.GetOrCreate(s.ctx, "FOSS News")
	s.Require().NoError(err)

	sourceID := s.createSource("TestSource", []int64{projectID})
	recordStore := NewRecordStore(s.db)

	inWindow := s.createRecord(sourceID, "https://example.com/in-window", domain.StateUnknown)
	s.Require().NoError(recordStore.SetProjects(s.ctx, inWindow, []int64{projectID}))

	categorized := s.createRecord(sourceID, "https://example.com/categorized", domain.StateInDigest)
	s.Require().NoError(recordStore.SetProjects(s.ctx, categorized, []int64{projectID}))

	// Same state and window but a different project.
	s.createRecord(sourceID, "https://example.com/unlinked", domain.StateUnknown)

	since := time.Now().AddDate(0, 0, -30)
	ids, err := recordStore.EligibleForReview(s.ctx, "FOSS News", since)
	s.NoError(err)
	s.Equal([]int64{inWindow}, ids)

	ids, err = recordStore.EligibleForReview(s.ctx, "FOSS News", time.Now().Add(time.Hour))
	s.NoError(err)
	s.Empty(ids)
}

func (s *PostgresIntegrationSuite) TestRecordStore_RandomWithoutText() {
	sourceID := s.createSource("TestSource", nil)
	store := NewRecordStore(s.db)

	id := s.createRecord(sourceID, "https://example.com/no-text", domain.StateUnknown)

	record, err := store.RandomWithoutText(s.ctx, nil)
	s.NoError(err)
	s.Equal(id, record.ID)

	s.NoError(store.SetText(s.ctx, id, "now it has text"))

	_, err = store.RandomWithoutText(s.ctx, nil)
	s.ErrorIs(err, domain.ErrNothingToDo)
}

func (s *PostgresIntegrationSuite) TestRecordStore_RandomWithoutText_BySource() {
	sourceA := s.createSource("SourceA", nil)
	sourceB := s.createSource("SourceB", nil)
	store := NewRecordStore(s.db)

	s.createRecord(sourceA, "https://example.com/a", domain.StateUnknown)
	idB := s.createRecord(sourceB, "https://example.com/b", domain.StateUnknown)

	record, err := store.RandomWithoutText(s.ctx, &sourceB)
	s.NoError(err)
	s.Equal(idB, record.ID)
}

func (s *PostgresIntegrationSuite) TestAttemptStore_Counts() {
	sourceID := s.createSource("TestSource", nil)
	recordID := s.createRecord(sourceID, "https://example.com/attempts", domain.StateUnknown)
	store := NewAttemptStore(s.db)

	for _, reviewerID := range []int64{1, 1, 2} {
		_, err := store.Create(s.ctx, &domain.CategorizationAttempt{
			Timestamp:      time.Now(),
			ReviewerID:     reviewerID,
			DigestRecordID: recordID,
			EstimatedState: utils.Ptr(domain.StateInDigest),
		})
		s.Require().NoError(err)
	}

	// Two attempts by reviewer 1 count once.
	counts, err := store.DistinctReviewerCounts(s.ctx, []int64{recordID})
	s.NoError(err)
	s.Equal(map[int64]int{recordID: 2}, counts)

	attempted, err := store.RecordIDsAttemptedBy(s.ctx, 1)
	s.NoError(err)
	s.Equal([]int64{recordID}, attempted)

	attempted, err = store.RecordIDsAttemptedBy(s.ctx, 3)
	s.NoError(err)
	s.Empty(attempted)

	history, err := store.ByRecord(s.ctx, recordID)
	s.NoError(err)
	s.Len(history, 3)
}

func (s *PostgresIntegrationSuite) TestKeywordStore_Upsert_NullCategoryIdempotent() {
	store := NewKeywordStore(s.db)

	s.Require().NoError(store.Upsert(s.ctx, &domain.Keyword{Name: "Linux", IsGeneric: true, Enabled: true}))

	// A repeat load of the same category-less keyword must update the
	// existing row, not insert a second one.
	s.Require().NoError(store.Upsert(s.ctx, &domain.Keyword{Name: "Linux", IsGeneric: true, Enabled: false}))

	rows, err := store.ByName(s.ctx, "Linux")
	s.NoError(err)
	s.Require().Len(rows, 1)
	s.False(rows[0].Enabled)
}

func (s *PostgresIntegrationSuite) TestKeywordStore_Upsert_DistinctCategories() {
	store := NewKeywordStore(s.db)
	category := domain.CategorySystem

	s.Require().NoError(store.Upsert(s.ctx, &domain.Keyword{Name: "Linux", Enabled: true}))
	s.Require().NoError(store.Upsert(s.ctx, &domain.Keyword{Name: "Linux", ContentCategory: &category, Enabled: true}))

	rows, err := store.ByName(s.ctx, "Linux")
	s.NoError(err)
	s.Len(rows, 2)
}

func (s *PostgresIntegrationSuite) TestSourceStore_UpsertWithProjects() {
	projectStore := NewProjectStore(s.db)
	sourceStore := NewSourceStore(s.db)

	p1, err := projectStore.GetOrCreate(s.ctx, "FOSS News")
	s.Require().NoError(err)
	p2, err := projectStore.GetOrCreate(s.ctx, "OS Friday")
	s.Require().NoError(err)

	id1, err := sourceStore.Upsert(s.ctx, &domain.Source{
		Name:       "OpenNetRu",
		Enabled:    true,
		Language:   domain.LanguageRussian,
		ProjectIDs: []int64{p1},
	})
	s.NoError(err)

	// Upserting again keeps the id and replaces project links.
	id2, err := sourceStore.Upsert(s.ctx, &domain.Source{
		Name:       "OpenNetRu",
		Enabled:    false,
		Language:   domain.LanguageRussian,
		ProjectIDs: []int64{p2},
	})
	s.NoError(err)
	s.Equal(id1, id2)

	src, err := sourceStore.ByName(s.ctx, "OpenNetRu")
	s.NoError(err)
	s.False(src.Enabled)
	s.Equal([]int64{p2}, src.ProjectIDs)

	_, err = sourceStore.ByName(s.ctx, "Missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestSourceStore_ByProject() {
	projectStore := NewProjectStore(s.db)
	sourceStore := NewSourceStore(s.db)

	projectID, err := projectStore.GetOrCreate(s.ctx, "FOSS News")
	s.Require().NoError(err)

	s.createSource("Linked", []int64{projectID})
	s.createSource("Unlinked", nil)

	sources, err := sourceStore.ByProject(s.ctx, "FOSS News")
	s.NoError(err)
	s.Require().Len(sources, 1)
	s.Equal("Linked", sources[0].Name)
}

func (s *PostgresIntegrationSuite) TestIterationStore_Create() {
	sourceID := s.createSource("TestSource", nil)
	store := NewIterationStore(s.db)

	id, err := store.Create(s.ctx, &domain.GatheringIteration{
		Timestamp:     time.Now(),
		SourceID:      sourceID,
		OverallCount:  10,
		GatheredCount: 7,
		SavedCount:    5,
		SourceEnabled: true,
		ParserError:   utils.Ptr("boom"),
	})
	s.NoError(err)
	s.Greater(id, int64(0))

	var parserError string
	err = s.db.GetContext(s.ctx, &parserError,
		"SELECT parser_error FROM gathering_iterations WHERE id = $1", id)
	s.NoError(err)
	s.Equal("boom", parserError)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	sourceID := s.createSource("TestSource", nil)
	tm := NewTransactionManager(s.db)
	store := NewRecordStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := store.Create(ctx, &domain.DigestRecord{
			Title:           "Committed",
			URL:             "https://example.com/tx-commit",
			GatherTimestamp: now,
			State:           domain.StateUnknown,
			ContentType:     domain.TypeUnknown,
			ContentCategory: domain.CategoryUnknown,
			Language:        domain.LanguageEnglish,
			SourceID:        sourceID,
		})
		return err
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM digest_records WHERE url = $1", "https://example.com/tx-commit")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	sourceID := s.createSource("TestSource", nil)
	tm := NewTransactionManager(s.db)
	store := NewRecordStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := store.Create(ctx, &domain.DigestRecord{
			Title:           "Rolled back",
			URL:             "https://example.com/tx-rollback",
			GatherTimestamp: now,
			State:           domain.StateUnknown,
			ContentType:     domain.TypeUnknown,
			ContentCategory: domain.CategoryUnknown,
			Language:        domain.LanguageEnglish,
			SourceID:        sourceID,
		})
		if err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM digest_records WHERE url = $1", "https://example.com/tx-rollback")
	s.NoError(err)
	s.Equal(0, count)
}
