package dto

import "ayat-reflection-be/internal/constant"

type GetAyatRequest struct {
	Feeling   string `json:"feeling" validate:"required,min=3,max=500"`
	Method    string `json:"method,omitempty" validate:"omitempty,oneof=text card"`
	EmotionID string `json:"emotion_id,omitempty" validate:"omitempty,max=64"`
}

// AyatDTO is one verse in the response. Tafsir fields are best effort
// and omitted when the detail fetch fails.
type AyatDTO struct {
	ID              string `json:"id"`
	Ref             string `json:"ref"`
	SurahName       string `json:"surah_name"`
	VerseNumber     int    `json:"verse_number"`
	Arabic          string `json:"arabic"`
	Translation     string `json:"translation"`
	Resonance       string `json:"resonance,omitempty"`
	TafsirSummary   string `json:"tafsir_summary,omitempty"`
	TafsirKemenag   string `json:"tafsir_kemenag,omitempty"`
	TafsirIbnKathir string `json:"tafsir_ibn_kathir,omitempty"`
}

// GetAyatResponse covers both outcomes: a gate rejection carries
// NotRelevant plus Message, an accepted query carries Reflection plus
// Ayat.
type GetAyatResponse struct {
	NotRelevant bool      `json:"not_relevant,omitempty"`
	Message     string    `json:"message,omitempty"`
	Reflection  string    `json:"reflection,omitempty"`
	Ayat        []AyatDTO `json:"ayat,omitempty"`
}

// ValidationError maps to a 400 with its message as the error body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RateLimitedError maps to a 429.
type RateLimitedError struct{}

func (e *RateLimitedError) Error() string {
	return constant.MsgRateLimited
}
