package pipeline

import "newsdigest/internal/domain"

// GuessCategories maps a free-text title to candidate content categories
// by whole-word keyword matching, grouping the matched keyword names by
// the keyword's category. Pure: no state, no side effects. Disabled
// keywords and keywords without a category contribute nothing.
func GuessCategories(title string, keywords []domain.Keyword) map[domain.ContentCategory][]string {
	matches := make(map[domain.ContentCategory][]string)
	for _, kw := range keywords {
		if !kw.Enabled || kw.ContentCategory == nil {
			continue
		}
		if FindKeywordInTitle(kw.Name, title) {
			matches[*kw.ContentCategory] = append(matches[*kw.ContentCategory], kw.Name)
		}
	}
	return matches
}
