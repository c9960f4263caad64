package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ayat-reflection-be/pkg/versestore"
)

// Store serves hybrid search straight from Postgres, for deployments
// that run their own corpus instead of Supabase. Vector and lexical legs
// are fused in one SQL query: 70% cosine similarity on the verse
// embedding, 30% ts_rank of the user's own words against the translation
// and tafsir text.
type Store struct {
	db *gorm.DB
}

var (
	_ versestore.Store         = &Store{}
	_ versestore.AnalyticsSink = &Store{}
)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

const (
	vectorWeight  = 0.7
	lexicalWeight = 0.3
)

func (s *Store) HybridSearch(ctx context.Context, vector []float32, rawText string, limit int) ([]versestore.CandidateVerse, error) {
	if limit <= 0 {
		limit = 20
	}

	type row struct {
		ID            string
		SurahName     string
		VerseNumber   int
		Arabic        string
		Translation   string
		TafsirSummary string
		Score         float64
	}
	var rows []row

	queryVector := pgvector.NewVector(vector)

	// Keeping the lexical leg anchored to rawText (not the expanded
	// description) so full-text matching stays on the user's own words.
	err := s.db.WithContext(ctx).
		Table("verses").
		Select(`verses.id, verses.surah_name, verses.verse_number, verses.arabic,
			verses.translation, verses.tafsir_summary,
			? * (1 - (verse_embeddings.embedding_value <=> ?)) +
			? * ts_rank(to_tsvector('indonesian', verses.translation || ' ' || verses.tafsir_summary),
				plainto_tsquery('indonesian', ?)) AS score`,
			vectorWeight, queryVector, lexicalWeight, rawText).
		Joins("JOIN verse_embeddings ON verse_embeddings.verse_id = verses.id").
		Order("score DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("hybrid search query: %w", err)
	}

	candidates := make([]versestore.CandidateVerse, len(rows))
	for i, r := range rows {
		candidates[i] = versestore.CandidateVerse{
			ID:            r.ID,
			SurahName:     r.SurahName,
			VerseNumber:   r.VerseNumber,
			Arabic:        r.Arabic,
			Translation:   r.Translation,
			TafsirSummary: r.TafsirSummary,
			Score:         r.Score,
		}
	}
	return candidates, nil
}

func (s *Store) FetchTafsir(ctx context.Context, ids []string) (map[string]versestore.TafsirDetail, error) {
	if len(ids) == 0 {
		return map[string]versestore.TafsirDetail{}, nil
	}

	var verses []Verse
	err := s.db.WithContext(ctx).
		Select("id", "tafsir_kemenag", "tafsir_ibn_kathir").
		Where("id IN ?", ids).
		Find(&verses).Error
	if err != nil {
		return nil, fmt.Errorf("tafsir fetch: %w", err)
	}

	details := make(map[string]versestore.TafsirDetail, len(verses))
	for _, v := range verses {
		details[v.ID] = versestore.TafsirDetail{
			ID:              v.ID,
			TafsirKemenag:   v.TafsirKemenag,
			TafsirIbnKathir: v.TafsirIbnKathir,
		}
	}
	return details, nil
}

func (s *Store) InsertEvent(ctx context.Context, event versestore.AnalyticsEvent) error {
	m := AnalyticsEventModel{
		ID:         event.ID,
		EventType:  event.EventType,
		Properties: datatypes.JSONMap(event.Properties),
		CreatedAt:  time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}
