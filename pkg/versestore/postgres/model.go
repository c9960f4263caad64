package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Verse is the corpus row. ID is the canonical "surah:verse" reference.
type Verse struct {
	ID              string `gorm:"primaryKey"`
	SurahNumber     int
	SurahName       string
	VerseNumber     int
	Arabic          string
	Translation     string
	TafsirSummary   string
	TafsirKemenag   string
	TafsirIbnKathir string
	CreatedAt       time.Time
}

func (Verse) TableName() string {
	return "verses"
}

// VerseEmbedding holds the index-side vector for one verse, built from
// its themed description at seed time.
type VerseEmbedding struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid"`
	VerseID        string
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt      time.Time
}

func (VerseEmbedding) TableName() string {
	return "verse_embeddings"
}

// AnalyticsEventModel mirrors the INSERT-only analytics_events table.
type AnalyticsEventModel struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid"`
	EventType  string
	Properties datatypes.JSONMap
	CreatedAt  time.Time
}

func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}
