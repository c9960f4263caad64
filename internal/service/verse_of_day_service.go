package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"ayat-reflection-be/internal/dto"
)

// IVerseOfDayService serves the curated daily verse rotation.
type IVerseOfDayService interface {
	GetVerseOfDay(now time.Time) (*dto.VerseOfDayResponse, error)
}

type dailyVerse struct {
	ID          string `json:"id"`
	SurahName   string `json:"surah_name"`
	VerseNumber int    `json:"verse_number"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	Theme       string `json:"theme,omitempty"`
}

// verseOfDayService loads the curated list once and rotates through it
// by UTC day number, so every client sees the same verse on a given day.
type verseOfDayService struct {
	filePath string

	once   sync.Once
	verses []dailyVerse
	err    error
}

func NewVerseOfDayService(filePath string) IVerseOfDayService {
	return &verseOfDayService{filePath: filePath}
}

func (s *verseOfDayService) load() {
	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		s.err = fmt.Errorf("read daily verses: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.verses); err != nil {
		s.err = fmt.Errorf("parse daily verses: %w", err)
		return
	}
	if len(s.verses) == 0 {
		s.err = fmt.Errorf("daily verses file %s is empty", s.filePath)
	}
}

func (s *verseOfDayService) GetVerseOfDay(now time.Time) (*dto.VerseOfDayResponse, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}

	dayIndex := int(now.UTC().Unix()/86400) % len(s.verses)
	verse := s.verses[dayIndex]

	return &dto.VerseOfDayResponse{
		ID:          verse.ID,
		Ref:         verseRef(verse.SurahName, verse.VerseNumber),
		SurahName:   verse.SurahName,
		VerseNumber: verse.VerseNumber,
		Arabic:      verse.Arabic,
		Translation: verse.Translation,
		Theme:       verse.Theme,
	}, nil
}

// SecondsUntilNextUTCDay sizes the Cache-Control max-age so a response
// expires exactly when the verse rotates.
func SecondsUntilNextUTCDay(now time.Time) int {
	nowUnix := now.UTC().Unix()
	next := (nowUnix/86400 + 1) * 86400
	remaining := int(next - nowUnix)
	if remaining < 1 {
		remaining = 1
	}
	return remaining
}
