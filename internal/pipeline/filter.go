package pipeline

import (
	"log/slog"
	"time"

	"newsdigest/internal/domain"
)

// FilterOld drops posts older than daysCount relative to now. Posts
// without a timestamp are kept; their date may be repaired later from a
// subsequent appearance.
func FilterOld(posts []domain.Post, daysCount int, now time.Time, logger *slog.Logger) []domain.Post {
	var kept []domain.Post
	for _, post := range posts {
		if post.Timestamp != nil && now.Sub(*post.Timestamp) > time.Duration(daysCount)*24*time.Hour {
			logger.Debug("filtered out as too old", "title", post.Title, "timestamp", *post.Timestamp)
			continue
		}
		kept = append(kept, post)
	}
	return kept
}

// FilterPool selects the keywords eligible for acceptance filtering:
// enabled, non-proprietary, drawn from the generic and/or specific pools
// a source opted into.
func FilterPool(keywords []domain.Keyword, filtration []domain.FiltrationType) []domain.Keyword {
	wantGeneric := false
	wantSpecific := false
	for _, f := range filtration {
		switch f {
		case domain.FiltrationGeneric:
			wantGeneric = true
		case domain.FiltrationSpecific:
			wantSpecific = true
		}
	}

	var pool []domain.Keyword
	for _, kw := range keywords {
		if !kw.Enabled || kw.Proprietary {
			continue
		}
		if (kw.IsGeneric && wantGeneric) || (!kw.IsGeneric && wantSpecific) {
			pool = append(pool, kw)
		}
	}
	return pool
}

// MarkFiltered applies keyword acceptance filtering: posts whose title
// matches no pool keyword are marked Filtered but still returned - the
// final accept/reject decision is recorded downstream via the record
// state. No-op when the source opted out of filtration.
func MarkFiltered(posts []domain.Post, keywords []domain.Keyword, filtration []domain.FiltrationType, logger *slog.Logger) []domain.Post {
	if len(filtration) == 0 {
		return posts
	}

	pool := FilterPool(keywords, filtration)
	for i := range posts {
		matched := false
		for _, kw := range pool {
			if FindKeywordInTitle(kw.Name, posts[i].Title) {
				matched = true
				break
			}
		}
		if !matched {
			posts[i].Filtered = true
			logger.Warn("post matches no expected keyword, marking filtered",
				"title", posts[i].Title, "url", posts[i].URL)
		}
	}
	return posts
}

// Tag annotates every post with all enabled keyword names found in its
// title. Always applied, independent of filtration: tagging covers the
// full enabled keyword set, not just the filter pools.
func Tag(posts []domain.Post, keywords []domain.Keyword) []domain.Post {
	for i := range posts {
		for _, kw := range keywords {
			if !kw.Enabled {
				continue
			}
			if containsString(posts[i].Keywords, kw.Name) {
				continue
			}
			if FindKeywordInTitle(kw.Name, posts[i].Title) {
				posts[i].Keywords = append(posts[i].Keywords, kw.Name)
			}
		}
	}
	return posts
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
