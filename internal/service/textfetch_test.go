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

type TextFetchServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	records   *mocks.MockRecordStore
	sources   *mocks.MockSourceStore
	extractor *mocks.MockTextExtractor

	service *TextFetchService
}

func (s *TextFetchServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.records = mocks.NewMockRecordStore(s.ctrl)
	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.extractor = mocks.NewMockTextExtractor(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewTextFetchService(s.records, s.sources, s.extractor, logger)
}

func (s *TextFetchServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTextFetchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TextFetchServiceTestSuite))
}

func (s *TextFetchServiceTestSuite) TestFetchByID() {
	ctx := context.Background()

	s.records.EXPECT().GetByID(ctx, int64(10)).
		Return(&domain.DigestRecord{ID: 10, URL: "https://example.com/post"}, nil)
	s.extractor.EXPECT().Extract(ctx, "https://example.com/post").
		Return("full article text", nil)

	record, text, err := s.service.FetchByID(ctx, 10)
	s.NoError(err)
	s.Equal(int64(10), record.ID)
	s.Equal("full article text", text)
}

func (s *TextFetchServiceTestSuite) TestFetchRandom() {
	ctx := context.Background()

	s.records.EXPECT().RandomWithoutText(ctx, (*int64)(nil)).
		Return(&domain.DigestRecord{ID: 11, URL: "https://example.com/random"}, nil)
	s.extractor.EXPECT().Extract(ctx, "https://example.com/random").
		Return("random text", nil)

	record, text, err := s.service.FetchRandom(ctx, "")
	s.NoError(err)
	s.Equal(int64(11), record.ID)
	s.Equal("random text", text)
}

func (s *TextFetchServiceTestSuite) TestFetchRandom_NarrowedToSource() {
	ctx := context.Background()

	s.sources.EXPECT().ByName(ctx, "OpenNetRu").
		Return(&domain.Source{ID: 7, Name: "OpenNetRu"}, nil)
	s.records.EXPECT().RandomWithoutText(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, sourceID *int64) (*domain.DigestRecord, error) {
			s.Require().NotNil(sourceID)
			s.Equal(int64(7), *sourceID)
			return &domain.DigestRecord{ID: 12, URL: "https://example.com/opennet"}, nil
		})
	s.extractor.EXPECT().Extract(ctx, "https://example.com/opennet").
		Return("text", nil)

	record, _, err := s.service.FetchRandom(ctx, "OpenNetRu")
	s.NoError(err)
	s.Equal(int64(12), record.ID)
}

func (s *TextFetchServiceTestSuite) TestFetchRandom_EmptyPool() {
	ctx := context.Background()

	s.records.EXPECT().RandomWithoutText(ctx, (*int64)(nil)).
		Return(nil, domain.ErrNothingToDo)

	_, _, err := s.service.FetchRandom(ctx, "")
	s.ErrorIs(err, domain.ErrNothingToDo)
}

func (s *TextFetchServiceTestSuite) TestSave() {
	ctx := context.Background()

	s.records.EXPECT().SetText(ctx, int64(10), "the text").Return(nil)

	s.NoError(s.service.Save(ctx, 10, "the text"))
}
