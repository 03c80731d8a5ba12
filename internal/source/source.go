package source

import (
	"fmt"
	"log/slog"
	"net/http"

	"context"

	"newsdigest/internal/domain"
)

// Parser is one adapter: it fetches raw content for a single source and
// turns it into uniform posts. Transport failures surface as *SourceError,
// malformed content as *ParseError; callers record the two differently.
type Parser interface {
	SourceName() string
	// Filtration reports which keyword pools this source is filtered
	// against; empty means the source's output is accepted unfiltered.
	Filtration() []domain.FiltrationType
	FetchAndParse(ctx context.Context) ([]domain.Post, error)
}

// Options carries the shared fetch environment into adapters.
type Options struct {
	HTTPClient *http.Client
	UserAgent  string
	Logger     *slog.Logger
}

func (o Options) client() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return http.DefaultClient
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// SourceError means the origin was unreachable or returned a non-success
// status. The run continues with the next source.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// ParseError means the origin responded but its content could not be
// turned into posts.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PostStep is a post-processing step attached to a source definition and
// applied in order after parsing. Replaces cross-cutting mixins with
// explicit composition.
type PostStep interface {
	Apply(posts []domain.Post, logger *slog.Logger) []domain.Post
}

func applySteps(posts []domain.Post, steps []PostStep, logger *slog.Logger) []domain.Post {
	for _, step := range steps {
		posts = step.Apply(posts, logger)
	}
	return posts
}
