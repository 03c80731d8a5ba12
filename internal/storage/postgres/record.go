package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsdigest/internal/domain"
)

const uniqueViolation = "23505"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

type recordRow struct {
	ID                 int64      `db:"id"`
	Title              string     `db:"title"`
	URL                string     `db:"url"`
	Timestamp          *time.Time `db:"ts"`
	GatherTimestamp    time.Time  `db:"gather_ts"`
	State              string     `db:"state"`
	ContentType        string     `db:"content_type"`
	ContentCategory    string     `db:"content_category"`
	IsMain             *bool      `db:"is_main"`
	Language           string     `db:"language"`
	Description        *string    `db:"description"`
	ClearedDescription *string    `db:"cleared_description"`
	Text               *string    `db:"text"`
	SourceID           int64      `db:"source_id"`
	DigestIssueID      *int64     `db:"digest_issue_id"`
	IssueNumber        *int       `db:"issue_number"`
}

const recordColumns = `
	id, title, url, ts, gather_ts, state, content_type, content_category,
	is_main, language, description, cleared_description, text, source_id,
	digest_issue_id`

func (r recordRow) toDomain() domain.DigestRecord {
	return domain.DigestRecord{
		ID:                 r.ID,
		Title:              r.Title,
		URL:                r.URL,
		Timestamp:          r.Timestamp,
		GatherTimestamp:    r.GatherTimestamp,
		State:              domain.RecordState(r.State),
		ContentType:        domain.ContentType(r.ContentType),
		ContentCategory:    domain.ContentCategory(r.ContentCategory),
		IsMain:             r.IsMain,
		Language:           domain.Language(r.Language),
		Description:        r.Description,
		ClearedDescription: r.ClearedDescription,
		Text:               r.Text,
		SourceID:           r.SourceID,
		DigestIssueID:      r.DigestIssueID,
	}
}

// Create inserts a new record. The unique constraint on url is the
// de-duplication mechanism: a concurrent insert of the same URL fails
// with ErrDuplicateURL instead of producing a second row.
func (s *RecordStore) Create(ctx context.Context, record *domain.DigestRecord) (int64, error) {
	query := `
		INSERT INTO digest_records (
			title, url, ts, gather_ts, state, content_type, content_category,
			is_main, language, description, cleared_description, source_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING id`

	var id int64
	err := getExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		record.Title,
		record.URL,
		record.Timestamp,
		record.GatherTimestamp,
		string(record.State),
		string(record.ContentType),
		string(record.ContentCategory),
		record.IsMain,
		string(record.Language),
		record.Description,
		record.ClearedDescription,
		record.SourceID,
	).Scan(&id)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return 0, domain.ErrDuplicateURL
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *RecordStore) GetByID(ctx context.Context, id int64) (*domain.DigestRecord, error) {
	var row recordRow
	err := s.db.GetContext(ctx, &row,
		`SELECT`+recordColumns+` FROM digest_records WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	record := row.toDomain()
	return &record, nil
}

// ExistingByURLs maps each already-stored URL to its stub.
func (s *RecordStore) ExistingByURLs(ctx context.Context, urls []string) (map[string]domain.RecordStub, error) {
	result := make(map[string]domain.RecordStub)
	if len(urls) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, ts IS NOT NULL FROM digest_records WHERE url = ANY($1)`,
		pq.Array(urls))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stub domain.RecordStub
		var url string
		if err := rows.Scan(&stub.ID, &url, &stub.HasTimestamp); err != nil {
			return nil, err
		}
		result[url] = stub
	}

	return result, rows.Err()
}

// BackfillTimestamp sets the record's date only when it is still unset.
// Reports whether a repair happened, so a third ingestion of the same
// URL is a plain no-op.
func (s *RecordStore) BackfillTimestamp(ctx context.Context, id int64, ts time.Time) (bool, error) {
	res, err := getExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE digest_records SET ts = $2 WHERE id = $1 AND ts IS NULL`, id, ts)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *RecordStore) UpdateState(ctx context.Context, id int64, state domain.RecordState) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE digest_records SET state = $2 WHERE id = $1`, id, string(state))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RecordStore) SetText(ctx context.Context, id int64, text string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE digest_records SET text = $2 WHERE id = $1`, id, text)
	return err
}

// SetKeywords replaces the record's keyword links.
func (s *RecordStore) SetKeywords(ctx context.Context, recordID int64, keywordIDs []int64) error {
	exec := getExecutor(ctx, s.db)
	if _, err := exec.ExecContext(ctx,
		`DELETE FROM record_keywords WHERE record_id = $1`, recordID); err != nil {
		return err
	}
	if len(keywordIDs) == 0 {
		return nil
	}
	_, err := exec.ExecContext(ctx, `
		INSERT INTO record_keywords (record_id, keyword_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`,
		recordID, pq.Array(keywordIDs))
	return err
}

// SetProjects replaces the record's project links.
func (s *RecordStore) SetProjects(ctx context.Context, recordID int64, projectIDs []int64) error {
	exec := getExecutor(ctx, s.db)
	if _, err := exec.ExecContext(ctx,
		`DELETE FROM record_projects WHERE record_id = $1`, recordID); err != nil {
		return err
	}
	if len(projectIDs) == 0 {
		return nil
	}
	_, err := exec.ExecContext(ctx, `
		INSERT INTO record_projects (record_id, project_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`,
		recordID, pq.Array(projectIDs))
	return err
}

func (s *RecordStore) KeywordIDs(ctx context.Context, recordID int64) ([]int64, error) {
	var ids []int64
	err := s.db.SelectContext(ctx, &ids,
		`SELECT keyword_id FROM record_keywords WHERE record_id = $1 ORDER BY keyword_id`, recordID)
	return ids, err
}

func (s *RecordStore) ListTitles(ctx context.Context) ([]domain.RecordTitle, error) {
	var titles []domain.RecordTitle
	err := s.db.SelectContext(ctx, &titles,
		`SELECT id, title FROM digest_records ORDER BY id`)
	return titles, err
}

// EligibleForReview lists candidate records for bot triage. Predicates
// compose in order: state, project membership, recency window; the
// attempt-based exclusions are set operations applied by the caller over
// materialized attempt data.
func (s *RecordStore) EligibleForReview(ctx context.Context, project string, since time.Time) ([]int64, error) {
	query, args, err := psql.
		Select("dr.id").
		From("digest_records dr").
		Join("record_projects rp ON rp.record_id = dr.id").
		Join("projects p ON p.id = rp.project_id").
		Where(sq.Eq{"dr.state": string(domain.StateUnknown)}).
		Where(sq.Eq{"p.name": project}).
		Where(sq.GtOrEq{"dr.gather_ts": since}).
		OrderBy("dr.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []int64
	err = s.db.SelectContext(ctx, &ids, query, args...)
	return ids, err
}

// RandomWithoutText picks one record lacking full text from sources with
// text fetching enabled, optionally narrowed to one source.
func (s *RecordStore) RandomWithoutText(ctx context.Context, sourceID *int64) (*domain.DigestRecord, error) {
	builder := psql.
		Select(
			"dr.id", "dr.title", "dr.url", "dr.ts", "dr.gather_ts", "dr.state",
			"dr.content_type", "dr.content_category", "dr.is_main", "dr.language",
			"dr.description", "dr.cleared_description", "dr.text", "dr.source_id",
			"dr.digest_issue_id",
		).
		From("digest_records dr").
		Join("sources s ON s.id = dr.source_id").
		Where(sq.Eq{"s.text_fetching_enabled": true}).
		Where("dr.text IS NULL").
		OrderBy("random()").
		Limit(1)
	if sourceID != nil {
		builder = builder.Where(sq.Eq{"dr.source_id": *sourceID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var row recordRow
	err = s.db.GetContext(ctx, &row, query, args...)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNothingToDo
	}
	if err != nil {
		return nil, err
	}
	record := row.toDomain()
	return &record, nil
}

// ListForExport returns IN_DIGEST records, or every record when all is
// set, oldest first.
func (s *RecordStore) ListForExport(ctx context.Context, all bool) ([]domain.ExportRecord, error) {
	builder := psql.
		Select(
			"dr.id", "dr.title", "dr.url", "dr.ts", "dr.gather_ts", "dr.state",
			"dr.content_type", "dr.content_category", "dr.is_main", "dr.language",
			"dr.description", "dr.cleared_description", "dr.text", "dr.source_id",
			"dr.digest_issue_id", "di.number AS issue_number",
		).
		From("digest_records dr").
		LeftJoin("digest_issues di ON di.id = dr.digest_issue_id").
		OrderBy("dr.id")
	if !all {
		builder = builder.Where(sq.Eq{"dr.state": string(domain.StateInDigest)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []recordRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	result := make([]domain.ExportRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.ExportRecord{Record: row.toDomain(), IssueNumber: row.IssueNumber})
	}
	return result, nil
}
