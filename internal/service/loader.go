package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"newsdigest/internal/domain"
)

// LoaderService seeds or updates the source and keyword catalogs from a
// YAML document.
type LoaderService struct {
	sources  SourceStore
	keywords KeywordStore
	projects ProjectStore
	logger   *slog.Logger
}

func NewLoaderService(sources SourceStore, keywords KeywordStore, projects ProjectStore, logger *slog.Logger) *LoaderService {
	return &LoaderService{
		sources:  sources,
		keywords: keywords,
		projects: projects,
		logger:   logger,
	}
}

type catalogFile struct {
	Sources  []catalogSource  `yaml:"sources"`
	Keywords []catalogKeyword `yaml:"keywords"`
}

type catalogSource struct {
	Name                string   `yaml:"name"`
	Enabled             bool     `yaml:"enabled"`
	DataURL             *string  `yaml:"data_url"`
	Language            string   `yaml:"language"`
	TextFetchingEnabled bool     `yaml:"text_fetching_enabled"`
	Projects            []string `yaml:"projects"`
}

type catalogKeyword struct {
	Name            string  `yaml:"name"`
	ContentCategory *string `yaml:"content_category"`
	IsGeneric       bool    `yaml:"is_generic"`
	Proprietary     bool    `yaml:"proprietary"`
	Enabled         bool    `yaml:"enabled"`
}

// Load upserts everything the YAML document describes. Returns how many
// sources and keywords were written.
func (s *LoaderService) Load(ctx context.Context, r io.Reader) (int, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, fmt.Errorf("read catalog: %w", err)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return 0, 0, fmt.Errorf("parse catalog: %w", err)
	}

	for _, entry := range catalog.Sources {
		if entry.Name == "" {
			return 0, 0, fmt.Errorf("catalog source without a name")
		}

		projectIDs := make([]int64, 0, len(entry.Projects))
		for _, name := range entry.Projects {
			id, err := s.projects.GetOrCreate(ctx, name)
			if err != nil {
				return 0, 0, fmt.Errorf("resolve project %q: %w", name, err)
			}
			projectIDs = append(projectIDs, id)
		}

		src := domain.Source{
			Name:                entry.Name,
			Enabled:             entry.Enabled,
			DataURL:             entry.DataURL,
			Language:            domain.Language(entry.Language),
			TextFetchingEnabled: entry.TextFetchingEnabled,
			ProjectIDs:          projectIDs,
		}
		if src.Language == "" {
			src.Language = domain.LanguageEnglish
		}

		if _, err := s.sources.Upsert(ctx, &src); err != nil {
			return 0, 0, fmt.Errorf("upsert source %q: %w", entry.Name, err)
		}
		s.logger.Debug("loaded source", "name", entry.Name)
	}

	for _, entry := range catalog.Keywords {
		if entry.Name == "" {
			return 0, 0, fmt.Errorf("catalog keyword without a name")
		}

		kw := domain.Keyword{
			Name:        entry.Name,
			IsGeneric:   entry.IsGeneric,
			Proprietary: entry.Proprietary,
			Enabled:     entry.Enabled,
		}
		if entry.ContentCategory != nil {
			category := domain.ContentCategory(*entry.ContentCategory)
			kw.ContentCategory = &category
		}

		if err := s.keywords.Upsert(ctx, &kw); err != nil {
			return 0, 0, fmt.Errorf("upsert keyword %q: %w", entry.Name, err)
		}
	}

	s.logger.Info("catalog loaded",
		"sources", len(catalog.Sources),
		"keywords", len(catalog.Keywords),
	)

	return len(catalog.Sources), len(catalog.Keywords), nil
}
