package domain

// FiltrationType selects which keyword pool a source is filtered against.
type FiltrationType string

const (
	FiltrationGeneric  FiltrationType = "generic"
	FiltrationSpecific FiltrationType = "specific"
)

// Source is one external feed or site definition. Name keys the adapter
// registry; DataURL overrides the adapter's default feed URL when set.
type Source struct {
	ID                  int64
	Name                string
	Enabled             bool
	DataURL             *string
	Language            Language
	TextFetchingEnabled bool
	ProjectIDs          []int64
}

// Keyword is one tagging/filtering entry. Uniqueness is (name, category).
// Disabled keywords are excluded from guessing and from filtering pools;
// proprietary keywords mark commercial topics and never make a record
// valuable on their own.
type Keyword struct {
	ID              int64
	Name            string
	ContentCategory *ContentCategory
	IsGeneric       bool
	Proprietary     bool
	Enabled         bool
}
