package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDailyVerses(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetVerseOfDay_RotatesByUTCDay(t *testing.T) {
	path := writeDailyVerses(t, `[
		{"id": "94:5", "surah_name": "Asy-Syarh", "verse_number": 5, "arabic": "a", "translation": "x"},
		{"id": "2:286", "surah_name": "Al-Baqarah", "verse_number": 286, "arabic": "b", "translation": "y"}
	]`)
	s := NewVerseOfDayService(path)

	day0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	first, err := s.GetVerseOfDay(day0)
	require.NoError(t, err)

	// Same day, later hour: same verse.
	sameDay, err := s.GetVerseOfDay(day0.Add(13 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.ID, sameDay.ID)

	// Next day: the other verse.
	nextDay, err := s.GetVerseOfDay(day0.Add(24 * time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, nextDay.ID)
}

func TestGetVerseOfDay_BuildsRef(t *testing.T) {
	path := writeDailyVerses(t, `[{"id": "13:28", "surah_name": "Ar-Ra'd", "verse_number": 28, "arabic": "a", "translation": "x", "theme": "ketenangan"}]`)
	s := NewVerseOfDayService(path)

	verse, err := s.GetVerseOfDay(time.Now())

	require.NoError(t, err)
	assert.Equal(t, "QS. Ar-Ra'd : 28", verse.Ref)
	assert.Equal(t, "ketenangan", verse.Theme)
}

func TestGetVerseOfDay_MissingFile(t *testing.T) {
	s := NewVerseOfDayService(filepath.Join(t.TempDir(), "nope.json"))

	_, err := s.GetVerseOfDay(time.Now())

	assert.Error(t, err)
}

func TestGetVerseOfDay_EmptyFile(t *testing.T) {
	s := NewVerseOfDayService(writeDailyVerses(t, `[]`))

	_, err := s.GetVerseOfDay(time.Now())

	assert.Error(t, err)
}

func TestSecondsUntilNextUTCDay(t *testing.T) {
	now := time.Date(2026, 1, 1, 23, 59, 30, 0, time.UTC)
	assert.Equal(t, 30, SecondsUntilNextUTCDay(now))

	midnight := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 86400, SecondsUntilNextUTCDay(midnight))
}
