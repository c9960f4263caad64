package curate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ayat-reflection-be/pkg/versestore"
)

func verse(id string) versestore.CandidateVerse {
	return versestore.CandidateVerse{ID: id}
}

func ids(candidates []versestore.CandidateVerse) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID
	}
	return out
}

func TestMergeAlternatesDisjointLists(t *testing.T) {
	a := []versestore.CandidateVerse{verse("2:153"), verse("2:155"), verse("3:200")}
	b := []versestore.CandidateVerse{verse("94:5"), verse("94:6"), verse("13:28")}

	merged := Merge(a, b)

	assert.Equal(t,
		[]string{"2:153", "94:5", "2:155", "94:6", "3:200", "13:28"},
		ids(merged),
		"disjoint lists should alternate, preserving each list's internal order")
}

func TestMergeDedupKeepsBestOccurrence(t *testing.T) {
	a := []versestore.CandidateVerse{verse("94:5"), verse("2:153")}
	b := []versestore.CandidateVerse{verse("39:53"), verse("12:87"), verse("94:5")}

	merged := Merge(a, b)

	count := 0
	for _, c := range merged {
		if c.ID == "94:5" {
			count++
		}
	}
	assert.Equal(t, 1, count, "shared identifier must appear exactly once")
	assert.Equal(t, "94:5", merged[0].ID, "first-seen (best ranked) occurrence wins")
}

func TestMergeUnevenLists(t *testing.T) {
	a := []versestore.CandidateVerse{verse("2:153")}
	b := []versestore.CandidateVerse{verse("94:5"), verse("94:6"), verse("13:28")}

	merged := Merge(a, b)

	assert.Equal(t, []string{"2:153", "94:5", "94:6", "13:28"}, ids(merged))
}

func TestMergeEmptyInput(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, nil, nil))
}

func TestDiversifyCapsPerSurah(t *testing.T) {
	merged := []versestore.CandidateVerse{
		verse("2:153"), verse("2:155"), verse("2:156"), verse("2:157"),
		verse("94:5"), verse("39:53"),
	}

	curated := Diversify(merged, 2, 25)

	assert.Equal(t, []string{"2:153", "2:155", "94:5", "39:53"}, ids(curated))

	perSurah := map[string]int{}
	for _, c := range curated {
		perSurah[c.CategoryKey()]++
	}
	for surah, n := range perSurah {
		assert.LessOrEqual(t, n, 2, "surah %s exceeds cap", surah)
	}
}

func TestDiversifyPreservesRelativeOrder(t *testing.T) {
	merged := []versestore.CandidateVerse{
		verse("94:5"), verse("2:153"), verse("94:6"), verse("2:155"),
		verse("2:156"), verse("39:53"),
	}

	curated := Diversify(merged, 2, 25)

	assert.Equal(t, []string{"94:5", "2:153", "94:6", "2:155", "39:53"}, ids(curated))
}

func TestDiversifyTruncates(t *testing.T) {
	var merged []versestore.CandidateVerse
	for _, id := range []string{"1:1", "2:1", "3:1", "4:1", "5:1", "6:1"} {
		merged = append(merged, verse(id))
	}

	curated := Diversify(merged, 2, 4)

	assert.Len(t, curated, 4)
	assert.Equal(t, []string{"1:1", "2:1", "3:1", "4:1"}, ids(curated))
}
