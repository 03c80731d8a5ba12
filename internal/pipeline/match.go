package pipeline

import (
	"regexp"
	"sync"
)

var (
	patternMu    sync.RWMutex
	patternCache = map[string]*regexp.Regexp{}
)

// Word boundaries separate on anything that is not a Unicode letter,
// digit or underscore. Go's \b is ASCII-only and cannot delimit
// Cyrillic keywords, so the boundary is spelled out.
const (
	wordBoundaryLeft  = `(?i)(?:^|[^\p{L}\p{N}_])`
	wordBoundaryRight = `(?:$|[^\p{L}\p{N}_])`
)

// FindKeywordInTitle reports whether keyword occurs in title as a
// whole-word, case-insensitive match. The keyword is matched literally:
// multi-word keywords and regex metacharacters are escaped, with word
// boundaries on both ends. "Kubernetes" matches the title "Kubernetes"
// but the keyword "Kube" does not, and "microkubernetes" matches
// nothing. Boundaries are Unicode-aware: "линукс" is a whole word in
// "про линукс сегодня", and "Linux" is not one inside "Linuxом".
func FindKeywordInTitle(keyword, title string) bool {
	patternMu.RLock()
	re, ok := patternCache[keyword]
	patternMu.RUnlock()
	if !ok {
		re = regexp.MustCompile(wordBoundaryLeft + regexp.QuoteMeta(keyword) + wordBoundaryRight)
		patternMu.Lock()
		patternCache[keyword] = re
		patternMu.Unlock()
	}
	return re.MatchString(title)
}
