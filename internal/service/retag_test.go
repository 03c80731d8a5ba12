package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdigest/internal/domain"
	"newsdigest/internal/service/mocks"
)

type RetagServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	records  *mocks.MockRecordStore
	keywords *mocks.MockKeywordStore

	service *RetagService
}

func (s *RetagServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.records = mocks.NewMockRecordStore(s.ctrl)
	s.keywords = mocks.NewMockKeywordStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewRetagService(s.records, s.keywords, logger)
}

func (s *RetagServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRetagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RetagServiceTestSuite))
}

func (s *RetagServiceTestSuite) retagKeywords() []domain.Keyword {
	return []domain.Keyword{
		{ID: 1, Name: "Linux", Enabled: true},
		{ID: 2, Name: "Kubernetes", Enabled: true},
		{ID: 3, Name: "BSD", Enabled: false},
	}
}

func (s *RetagServiceTestSuite) TestRun_RewritesChangedLinks() {
	ctx := context.Background()

	s.keywords.EXPECT().All(ctx).Return(s.retagKeywords(), nil)
	s.records.EXPECT().ListTitles(ctx).Return([]domain.RecordTitle{
		{ID: 10, Title: "Linux and Kubernetes together"},
		{ID: 11, Title: "Linux kernel news"},
		{ID: 12, Title: "BSD jails explained"},
	}, nil)

	// Record 10 gains Kubernetes, record 11 is already right, record 12
	// loses its stale link since BSD is now disabled.
	s.records.EXPECT().KeywordIDs(ctx, int64(10)).Return([]int64{1}, nil)
	s.records.EXPECT().SetKeywords(ctx, int64(10), []int64{1, 2}).Return(nil)

	s.records.EXPECT().KeywordIDs(ctx, int64(11)).Return([]int64{1}, nil)

	s.records.EXPECT().KeywordIDs(ctx, int64(12)).Return([]int64{3}, nil)
	s.records.EXPECT().SetKeywords(ctx, int64(12), []int64(nil)).Return(nil)

	changed, err := s.service.Run(ctx)
	s.NoError(err)
	s.Equal(2, changed)
}

func (s *RetagServiceTestSuite) TestRun_Idempotent() {
	ctx := context.Background()

	s.keywords.EXPECT().All(ctx).Return(s.retagKeywords(), nil)
	s.records.EXPECT().ListTitles(ctx).Return([]domain.RecordTitle{
		{ID: 10, Title: "Linux and Kubernetes together"},
	}, nil)
	s.records.EXPECT().KeywordIDs(ctx, int64(10)).Return([]int64{1, 2}, nil)

	changed, err := s.service.Run(ctx)
	s.NoError(err)
	s.Equal(0, changed)
}
