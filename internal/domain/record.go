package domain

import "time"

// RecordState is the categorization lifecycle state of a digest record.
type RecordState string

const (
	StateUnknown   RecordState = "UNKNOWN"
	StateInDigest  RecordState = "IN_DIGEST"
	StateIgnored   RecordState = "IGNORED"
	StateOutdated  RecordState = "OUTDATED"
	StateDuplicate RecordState = "DUPLICATE"
	StateFiltered  RecordState = "FILTERED"
	StateSkipped   RecordState = "SKIPPED"
)

type ContentType string

const (
	TypeUnknown  ContentType = "UNKNOWN"
	TypeNews     ContentType = "NEWS"
	TypeArticles ContentType = "ARTICLES"
	TypeVideos   ContentType = "VIDEOS"
	TypeReleases ContentType = "RELEASES"
	TypeOther    ContentType = "OTHER"
)

type ContentCategory string

const (
	CategoryUnknown      ContentCategory = "UNKNOWN"
	CategoryEvents       ContentCategory = "EVENTS"
	CategoryIntros       ContentCategory = "INTROS"
	CategoryOpening      ContentCategory = "OPENING"
	CategoryOrg          ContentCategory = "ORG"
	CategoryDIY          ContentCategory = "DIY"
	CategoryLaw          ContentCategory = "LAW"
	CategoryKnD          ContentCategory = "KnD"
	CategorySystem       ContentCategory = "SYSTEM"
	CategorySpecial      ContentCategory = "SPECIAL"
	CategoryEducation    ContentCategory = "EDUCATION"
	CategoryDatabases    ContentCategory = "DB"
	CategoryMultimedia   ContentCategory = "MULTIMEDIA"
	CategoryMobile       ContentCategory = "MOBILE"
	CategorySecurity     ContentCategory = "SECURITY"
	CategorySysAdm       ContentCategory = "SYSADM"
	CategoryDevOps       ContentCategory = "DEVOPS"
	CategoryDataScience  ContentCategory = "DATA_SCIENCE"
	CategoryWeb          ContentCategory = "WEB"
	CategoryDev          ContentCategory = "DEV"
	CategoryTesting      ContentCategory = "TESTING"
	CategoryHistory      ContentCategory = "HISTORY"
	CategoryManagement   ContentCategory = "MANAGEMENT"
	CategoryUser         ContentCategory = "USER"
	CategoryGames        ContentCategory = "GAMES"
	CategoryHardware     ContentCategory = "HARDWARE"
	CategoryMessengers   ContentCategory = "MESSENGERS"
	CategoryMisc         ContentCategory = "MISC"
)

type Language string

const (
	LanguageEnglish Language = "ENGLISH"
	LanguageRussian Language = "RUSSIAN"
)

// DigestRecord is the canonical representation of one gathered item.
// URL is the natural key: no two records may share one.
type DigestRecord struct {
	ID                 int64
	Title              string
	URL                string
	Timestamp          *time.Time
	GatherTimestamp    time.Time
	State              RecordState
	ContentType        ContentType
	ContentCategory    ContentCategory
	IsMain             *bool
	Language           Language
	Description        *string
	ClearedDescription *string
	Text               *string
	SourceID           int64
	DigestIssueID      *int64
	KeywordIDs         []int64
	ProjectIDs         []int64
}

// NotCategorized reports whether a record still needs categorization work.
// Derived, never stored: UNKNOWN records always qualify, and IN_DIGEST
// records qualify while type, category or is_main remain unset. Records of
// type OTHER are exempt from needing a category.
func (r *DigestRecord) NotCategorized() bool {
	if r.State == StateUnknown {
		return true
	}
	if r.State != StateInDigest {
		return false
	}
	if r.ContentType == TypeUnknown || r.ContentType == "" {
		return true
	}
	if r.IsMain == nil {
		return true
	}
	if r.ContentType != TypeOther && (r.ContentCategory == CategoryUnknown || r.ContentCategory == "") {
		return true
	}
	return false
}

// RecordStub is what ingestion needs to know about an already-stored URL.
type RecordStub struct {
	ID           int64
	HasTimestamp bool
}

// RecordTitle is the minimal projection a full re-tag pass walks.
type RecordTitle struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

// ExportRecord is one row of the ML dump, issue number already joined.
type ExportRecord struct {
	Record      DigestRecord
	IssueNumber *int
}

// DigestIssue is one periodic publication boundary. Special issues are
// skipped when walking previous-issue chains.
type DigestIssue struct {
	ID        int64
	Number    int
	IsSpecial bool
}

type Project struct {
	ID   int64
	Name string
}

// CategorizationAttempt is one reviewer's estimation for a record.
// Append-only.
type CategorizationAttempt struct {
	ID                       int64
	Timestamp                time.Time
	ReviewerID               int64
	DigestRecordID           int64
	EstimatedState           *RecordState
	EstimatedIsMain          *bool
	EstimatedContentType     *ContentType
	EstimatedContentCategory *ContentCategory
}
