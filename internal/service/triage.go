package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"newsdigest/internal/config"
	"newsdigest/internal/domain"
)

// TriageService tracks categorization consensus: it hands out records
// for review, records estimations append-only, and applies lifecycle
// state changes.
type TriageService struct {
	records  RecordStore
	attempts AttemptStore
	logger   *slog.Logger
	config   config.TriageConfig
	now      func() time.Time
	pick     func(n int) int
}

func NewTriageService(
	records RecordStore,
	attempts AttemptStore,
	logger *slog.Logger,
	cfg config.TriageConfig,
) *TriageService {
	return &TriageService{
		records:  records,
		attempts: attempts,
		logger:   logger,
		config:   cfg,
		now:      time.Now,
		pick:     rand.IntN,
	}
}

// NextForReview picks one record for the reviewer, uniformly at random
// over the eligible pool: UNKNOWN records of the project gathered within
// the recency window, not yet attempted by this reviewer, with fewer
// distinct-reviewer attempts than the consensus threshold. An empty pool
// is ErrNothingToDo.
func (s *TriageService) NextForReview(ctx context.Context, project string, reviewerID int64) (*domain.DigestRecord, error) {
	since := s.now().AddDate(0, 0, -s.config.RecencyDays)

	candidates, err := s.records.EligibleForReview(ctx, project, since)
	if err != nil {
		return nil, fmt.Errorf("list eligible records: %w", err)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNothingToDo
	}

	attemptedIDs, err := s.attempts.RecordIDsAttemptedBy(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("list reviewer attempts: %w", err)
	}
	attempted := make(map[int64]bool, len(attemptedIDs))
	for _, id := range attemptedIDs {
		attempted[id] = true
	}

	counts, err := s.attempts.DistinctReviewerCounts(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("count reviewer attempts: %w", err)
	}

	var eligible []int64
	for _, id := range candidates {
		if attempted[id] {
			continue
		}
		if counts[id] >= s.config.EstimationsEnough {
			continue
		}
		eligible = append(eligible, id)
	}
	if len(eligible) == 0 {
		return nil, domain.ErrNothingToDo
	}

	id := eligible[s.pick(len(eligible))]

	s.logger.Debug("picked record for review",
		"record_id", id,
		"reviewer_id", reviewerID,
		"pool_size", len(eligible),
	)

	return s.records.GetByID(ctx, id)
}

// AddAttempt appends one reviewer estimation. Attempts are never
// rewritten; consensus is recomputed from the accumulated history.
func (s *TriageService) AddAttempt(ctx context.Context, attempt *domain.CategorizationAttempt) (int64, error) {
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = s.now()
	}
	id, err := s.attempts.Create(ctx, attempt)
	if err != nil {
		return 0, fmt.Errorf("save attempt: %w", err)
	}
	s.logger.Info("recorded categorization attempt",
		"record_id", attempt.DigestRecordID,
		"reviewer_id", attempt.ReviewerID,
	)
	return id, nil
}

// UpdateState applies a lifecycle transition. UNKNOWN records move to a
// terminal categorization; FILTERED and SKIPPED records can only be
// reopened to UNKNOWN, which is the repair path for wrongly-skipped
// records.
func (s *TriageService) UpdateState(ctx context.Context, recordID int64, state domain.RecordState) error {
	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return err
	}

	if !validTransition(record.State, state) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStateTransition, record.State, state)
	}

	if err := s.records.UpdateState(ctx, recordID, state); err != nil {
		return err
	}

	s.logger.Info("record state changed",
		"record_id", recordID,
		"from", record.State,
		"to", state,
	)
	return nil
}

// MarkForRecategorization reopens a FILTERED or SKIPPED record.
func (s *TriageService) MarkForRecategorization(ctx context.Context, recordID int64) error {
	return s.UpdateState(ctx, recordID, domain.StateUnknown)
}

func validTransition(from, to domain.RecordState) bool {
	switch from {
	case domain.StateUnknown:
		switch to {
		case domain.StateInDigest, domain.StateIgnored, domain.StateOutdated, domain.StateDuplicate:
			return true
		}
	case domain.StateFiltered, domain.StateSkipped:
		return to == domain.StateUnknown
	}
	return false
}
