package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsdigest/internal/domain"
)

func guessKeywords() []domain.Keyword {
	system := domain.CategorySystem
	devops := domain.CategoryDevOps
	return []domain.Keyword{
		{ID: 1, Name: "Linux", ContentCategory: &system, Enabled: true},
		{ID: 2, Name: "Docker", ContentCategory: &devops, Enabled: true},
		{ID: 3, Name: "Swarm", ContentCategory: &devops, Enabled: true},
		{ID: 4, Name: "Emacs", ContentCategory: &system, Enabled: false},
		{ID: 5, Name: "Windows", Enabled: true},
	}
}

func TestGuessCategories_GroupsByCategory(t *testing.T) {
	matches := GuessCategories("Docker Swarm on Linux", guessKeywords())

	assert.Len(t, matches, 2)
	assert.ElementsMatch(t, []string{"Docker", "Swarm"}, matches[domain.CategoryDevOps])
	assert.Equal(t, []string{"Linux"}, matches[domain.CategorySystem])
}

func TestGuessCategories_SkipsDisabledKeywords(t *testing.T) {
	matches := GuessCategories("Emacs configuration deep dive", guessKeywords())

	assert.Empty(t, matches)
}

func TestGuessCategories_SkipsKeywordsWithoutCategory(t *testing.T) {
	matches := GuessCategories("Windows subsystem news", guessKeywords())

	assert.Empty(t, matches)
}

func TestGuessCategories_NoMatches(t *testing.T) {
	matches := GuessCategories("Completely unrelated title", guessKeywords())

	assert.Empty(t, matches)
}
