package versestore

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CandidateVerse is a read-only projection of one corpus verse as
// surfaced by hybrid search. The pipeline never mutates the corpus; the
// long tafsir fields are deliberately absent and fetched only for
// finalists via FetchTafsir.
type CandidateVerse struct {
	ID            string  `json:"id"` // "surah:verse", e.g. "94:5"
	SurahName     string  `json:"surah_name"`
	VerseNumber   int     `json:"verse_number"`
	Arabic        string  `json:"arabic"`
	Translation   string  `json:"translation"`
	TafsirSummary string  `json:"tafsir_summary"`
	Score         float64 `json:"score"`
}

// CategoryKey returns the surah part of the verse ID, the grouping
// attribute used to cap over-representation among candidates.
func (v CandidateVerse) CategoryKey() string {
	if i := strings.Index(v.ID, ":"); i > 0 {
		return v.ID[:i]
	}
	return v.ID
}

// TafsirDetail carries the heavyweight commentary fields kept out of the
// candidate projection.
type TafsirDetail struct {
	ID              string `json:"id"`
	TafsirKemenag   string `json:"tafsir_kemenag"`
	TafsirIbnKathir string `json:"tafsir_ibn_kathir"`
}

// Store is the corpus-side collaborator: a ranked-list provider plus a
// batched fetch for finalist-only fields.
type Store interface {
	// HybridSearch fuses vector similarity with lexical matching over
	// rawText and returns up to limit candidates, best first.
	HybridSearch(ctx context.Context, vector []float32, rawText string, limit int) ([]CandidateVerse, error)

	// FetchTafsir returns the long commentary fields for exactly the
	// given verse IDs. Callers pass finalist IDs only, never the full
	// candidate set.
	FetchTafsir(ctx context.Context, ids []string) (map[string]TafsirDetail, error)
}

// AnalyticsEvent is one allowlisted behaviour event. No user content is
// ever stored, only the event type and primitive metadata.
type AnalyticsEvent struct {
	ID         uuid.UUID              `json:"id"`
	EventType  string                 `json:"event_type"`
	Properties map[string]interface{} `json:"properties"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// AnalyticsSink persists analytics events. Implementations must be safe
// to fail: the caller logs and drops, never surfaces.
type AnalyticsSink interface {
	InsertEvent(ctx context.Context, event AnalyticsEvent) error
}
