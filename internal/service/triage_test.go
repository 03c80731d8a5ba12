package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdigest/internal/config"
	"newsdigest/internal/domain"
	"newsdigest/internal/service/mocks"
	"newsdigest/testdata/utils"
)

type TriageServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	records  *mocks.MockRecordStore
	attempts *mocks.MockAttemptStore

	service *TriageService
	now     time.Time
}

func (s *TriageServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.records = mocks.NewMockRecordStore(s.ctrl)
	s.attempts = mocks.NewMockAttemptStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.now = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	s.service = NewTriageService(s.records, s.attempts, logger, config.TriageConfig{
		RecencyDays:       30,
		EstimationsEnough: 3,
	})
	s.service.now = func() time.Time { return s.now }
	s.service.pick = func(n int) int { return 0 }
}

func (s *TriageServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTriageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TriageServiceTestSuite))
}

func (s *TriageServiceTestSuite) TestNextForReview() {
	ctx := context.Background()
	since := s.now.AddDate(0, 0, -30)

	s.records.EXPECT().EligibleForReview(ctx, "FOSS News", since).
		Return([]int64{10, 11, 12}, nil)
	s.attempts.EXPECT().RecordIDsAttemptedBy(ctx, int64(5)).
		Return([]int64{10}, nil)
	s.attempts.EXPECT().DistinctReviewerCounts(ctx, []int64{10, 11, 12}).
		Return(map[int64]int{11: 3}, nil)

	// 10 was already attempted by this reviewer, 11 reached consensus.
	s.records.EXPECT().GetByID(ctx, int64(12)).
		Return(&domain.DigestRecord{ID: 12, State: domain.StateUnknown}, nil)

	record, err := s.service.NextForReview(ctx, "FOSS News", 5)
	s.NoError(err)
	s.Equal(int64(12), record.ID)
}

func (s *TriageServiceTestSuite) TestNextForReview_EmptyPool() {
	ctx := context.Background()

	s.records.EXPECT().EligibleForReview(ctx, "FOSS News", gomock.Any()).
		Return(nil, nil)

	_, err := s.service.NextForReview(ctx, "FOSS News", 5)
	s.ErrorIs(err, domain.ErrNothingToDo)
}

func (s *TriageServiceTestSuite) TestNextForReview_AllSaturated() {
	ctx := context.Background()

	s.records.EXPECT().EligibleForReview(ctx, "FOSS News", gomock.Any()).
		Return([]int64{10}, nil)
	s.attempts.EXPECT().RecordIDsAttemptedBy(ctx, int64(5)).
		Return(nil, nil)
	s.attempts.EXPECT().DistinctReviewerCounts(ctx, []int64{10}).
		Return(map[int64]int{10: 4}, nil)

	_, err := s.service.NextForReview(ctx, "FOSS News", 5)
	s.ErrorIs(err, domain.ErrNothingToDo)
}

func (s *TriageServiceTestSuite) TestAddAttempt_SetsTimestamp() {
	ctx := context.Background()
	attempt := &domain.CategorizationAttempt{
		ReviewerID:     5,
		DigestRecordID: 10,
		EstimatedState: utils.Ptr(domain.StateInDigest),
	}

	s.attempts.EXPECT().Create(ctx, attempt).
		DoAndReturn(func(_ context.Context, a *domain.CategorizationAttempt) (int64, error) {
			s.Equal(s.now, a.Timestamp)
			return 77, nil
		})

	id, err := s.service.AddAttempt(ctx, attempt)
	s.NoError(err)
	s.Equal(int64(77), id)
}

func (s *TriageServiceTestSuite) TestAddAttempt_KeepsExplicitTimestamp() {
	ctx := context.Background()
	explicit := s.now.Add(-time.Hour)
	attempt := &domain.CategorizationAttempt{
		Timestamp:      explicit,
		ReviewerID:     5,
		DigestRecordID: 10,
	}

	s.attempts.EXPECT().Create(ctx, attempt).
		DoAndReturn(func(_ context.Context, a *domain.CategorizationAttempt) (int64, error) {
			s.Equal(explicit, a.Timestamp)
			return 78, nil
		})

	_, err := s.service.AddAttempt(ctx, attempt)
	s.NoError(err)
}

func (s *TriageServiceTestSuite) TestUpdateState_ValidTransitions() {
	ctx := context.Background()

	tests := []struct {
		from domain.RecordState
		to   domain.RecordState
	}{
		{domain.StateUnknown, domain.StateInDigest},
		{domain.StateUnknown, domain.StateIgnored},
		{domain.StateUnknown, domain.StateOutdated},
		{domain.StateUnknown, domain.StateDuplicate},
		{domain.StateFiltered, domain.StateUnknown},
		{domain.StateSkipped, domain.StateUnknown},
	}

	for _, tt := range tests {
		s.records.EXPECT().GetByID(ctx, int64(10)).
			Return(&domain.DigestRecord{ID: 10, State: tt.from}, nil)
		s.records.EXPECT().UpdateState(ctx, int64(10), tt.to).Return(nil)

		s.NoError(s.service.UpdateState(ctx, 10, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func (s *TriageServiceTestSuite) TestUpdateState_InvalidTransitions() {
	ctx := context.Background()

	tests := []struct {
		from domain.RecordState
		to   domain.RecordState
	}{
		{domain.StateUnknown, domain.StateUnknown},
		{domain.StateUnknown, domain.StateFiltered},
		{domain.StateInDigest, domain.StateIgnored},
		{domain.StateFiltered, domain.StateInDigest},
		{domain.StateIgnored, domain.StateUnknown},
	}

	for _, tt := range tests {
		s.records.EXPECT().GetByID(ctx, int64(10)).
			Return(&domain.DigestRecord{ID: 10, State: tt.from}, nil)

		err := s.service.UpdateState(ctx, 10, tt.to)
		s.ErrorIs(err, domain.ErrInvalidStateTransition, "%s -> %s", tt.from, tt.to)
	}
}

func (s *TriageServiceTestSuite) TestMarkForRecategorization() {
	ctx := context.Background()

	s.records.EXPECT().GetByID(ctx, int64(10)).
		Return(&domain.DigestRecord{ID: 10, State: domain.StateSkipped}, nil)
	s.records.EXPECT().UpdateState(ctx, int64(10), domain.StateUnknown).Return(nil)

	s.NoError(s.service.MarkForRecategorization(ctx, 10))
}
