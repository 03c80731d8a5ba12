package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsdigest/internal/domain"
)

type AttemptStore struct {
	db *sqlx.DB
}

func NewAttemptStore(db *sqlx.DB) *AttemptStore {
	return &AttemptStore{db: db}
}

// Create appends one estimation. Attempts are never updated or deleted;
// consensus is always recomputed from the full history.
func (s *AttemptStore) Create(ctx context.Context, a *domain.CategorizationAttempt) (int64, error) {
	var state, contentType, category *string
	if a.EstimatedState != nil {
		v := string(*a.EstimatedState)
		state = &v
	}
	if a.EstimatedContentType != nil {
		v := string(*a.EstimatedContentType)
		contentType = &v
	}
	if a.EstimatedContentCategory != nil {
		v := string(*a.EstimatedContentCategory)
		category = &v
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO categorization_attempts (
			ts, reviewer_id, digest_record_id,
			estimated_state, estimated_is_main, estimated_content_type, estimated_content_category
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		a.Timestamp,
		a.ReviewerID,
		a.DigestRecordID,
		state,
		a.EstimatedIsMain,
		contentType,
		category,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DistinctReviewerCounts maps each record to how many distinct reviewers
// have estimated it. Records with no attempts are absent from the map.
func (s *AttemptStore) DistinctReviewerCounts(ctx context.Context, recordIDs []int64) (map[int64]int, error) {
	result := make(map[int64]int)
	if len(recordIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT digest_record_id, COUNT(DISTINCT reviewer_id)
		FROM categorization_attempts
		WHERE digest_record_id = ANY($1)
		GROUP BY digest_record_id`,
		pq.Array(recordIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var recordID int64
		var count int
		if err := rows.Scan(&recordID, &count); err != nil {
			return nil, err
		}
		result[recordID] = count
	}

	return result, rows.Err()
}

// RecordIDsAttemptedBy lists every record the reviewer has already
// estimated, so triage never hands the same record back to them.
func (s *AttemptStore) RecordIDsAttemptedBy(ctx context.Context, reviewerID int64) ([]int64, error) {
	var ids []int64
	err := s.db.SelectContext(ctx, &ids, `
		SELECT DISTINCT digest_record_id
		FROM categorization_attempts
		WHERE reviewer_id = $1
		ORDER BY digest_record_id`,
		reviewerID)
	return ids, err
}

// ByRecord returns the full estimation history for one record, oldest
// first.
func (s *AttemptStore) ByRecord(ctx context.Context, recordID int64) ([]domain.CategorizationAttempt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ts, reviewer_id, digest_record_id,
		       estimated_state, estimated_is_main, estimated_content_type, estimated_content_category
		FROM categorization_attempts
		WHERE digest_record_id = $1
		ORDER BY ts, id`,
		recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.CategorizationAttempt
	for rows.Next() {
		var a domain.CategorizationAttempt
		var state, contentType, category *string
		if err := rows.Scan(&a.ID, &a.Timestamp, &a.ReviewerID, &a.DigestRecordID,
			&state, &a.EstimatedIsMain, &contentType, &category); err != nil {
			return nil, err
		}
		if state != nil {
			v := domain.RecordState(*state)
			a.EstimatedState = &v
		}
		if contentType != nil {
			v := domain.ContentType(*contentType)
			a.EstimatedContentType = &v
		}
		if category != nil {
			v := domain.ContentCategory(*category)
			a.EstimatedContentCategory = &v
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}
