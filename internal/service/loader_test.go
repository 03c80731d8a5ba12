package service

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdigest/internal/domain"
	"newsdigest/internal/service/mocks"
)

type LoaderServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sources  *mocks.MockSourceStore
	keywords *mocks.MockKeywordStore
	projects *mocks.MockProjectStore

	service *LoaderService
}

func (s *LoaderServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.keywords = mocks.NewMockKeywordStore(s.ctrl)
	s.projects = mocks.NewMockProjectStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewLoaderService(s.sources, s.keywords, s.projects, logger)
}

func (s *LoaderServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLoaderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderServiceTestSuite))
}

const testCatalog = `
sources:
  - name: OpenNetRu
    enabled: true
    language: RUSSIAN
    text_fetching_enabled: true
    projects:
      - FOSS News
  - name: LinuxCom
    enabled: false

keywords:
  - name: Linux
    is_generic: true
    enabled: true
  - name: Windows
    proprietary: true
    enabled: true
    content_category: SYSTEM
`

func (s *LoaderServiceTestSuite) TestLoad() {
	ctx := context.Background()

	s.projects.EXPECT().GetOrCreate(ctx, "FOSS News").Return(int64(1), nil)

	s.sources.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, src *domain.Source) (int64, error) {
			s.Equal("OpenNetRu", src.Name)
			s.True(src.Enabled)
			s.Equal(domain.LanguageRussian, src.Language)
			s.True(src.TextFetchingEnabled)
			s.Equal([]int64{1}, src.ProjectIDs)
			return 7, nil
		})
	s.sources.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, src *domain.Source) (int64, error) {
			s.Equal("LinuxCom", src.Name)
			s.False(src.Enabled)
			// Language defaults when the catalog omits it.
			s.Equal(domain.LanguageEnglish, src.Language)
			s.Empty(src.ProjectIDs)
			return 8, nil
		})

	s.keywords.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, kw *domain.Keyword) error {
			s.Equal("Linux", kw.Name)
			s.True(kw.IsGeneric)
			s.Nil(kw.ContentCategory)
			return nil
		})
	s.keywords.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, kw *domain.Keyword) error {
			s.Equal("Windows", kw.Name)
			s.True(kw.Proprietary)
			s.Require().NotNil(kw.ContentCategory)
			s.Equal(domain.CategorySystem, *kw.ContentCategory)
			return nil
		})

	nSources, nKeywords, err := s.service.Load(ctx, strings.NewReader(testCatalog))
	s.NoError(err)
	s.Equal(2, nSources)
	s.Equal(2, nKeywords)
}

func (s *LoaderServiceTestSuite) TestLoad_SourceWithoutNameIsError() {
	_, _, err := s.service.Load(context.Background(), strings.NewReader("sources:\n  - enabled: true\n"))
	s.Error(err)
}

func (s *LoaderServiceTestSuite) TestLoad_BadYAMLIsError() {
	_, _, err := s.service.Load(context.Background(), strings.NewReader("sources: ["))
	s.Error(err)
}
