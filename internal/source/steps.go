package source

import (
	"log/slog"
	"regexp"

	"newsdigest/internal/domain"
)

// digestIssueTitle matches the digest's own published-issue titles as
// they come back through aggregators. Sources that echo the digest need
// this guard so the pipeline does not ingest its own output.
var digestIssueTitle = regexp.MustCompile(`(?i)^(FOSS News|OS Friday)\s*(№|#)\s*\d+`)

// DropTitlePattern removes posts whose title matches the given pattern.
type DropTitlePattern struct {
	pattern *regexp.Regexp
}

func NewDropTitlePattern(pattern *regexp.Regexp) *DropTitlePattern {
	return &DropTitlePattern{pattern: pattern}
}

// DropSelfReferences is the standard guard against re-ingesting published
// issues.
func DropSelfReferences() *DropTitlePattern {
	return NewDropTitlePattern(digestIssueTitle)
}

func (s *DropTitlePattern) Apply(posts []domain.Post, logger *slog.Logger) []domain.Post {
	kept := posts[:0]
	for _, post := range posts {
		if s.pattern.MatchString(post.Title) {
			logger.Warn("dropping self-referencing post", "title", post.Title, "url", post.URL)
			continue
		}
		kept = append(kept, post)
	}
	return kept
}
