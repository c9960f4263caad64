package curate

import (
	"ayat-reflection-be/pkg/versestore"
)

// The curator is pure: it merges the per-angle ranked lists into one
// working set without any I/O.

// Merge interleaves ranked lists round-robin by rank position: at each
// position every list is visited in fixed order, and an item is appended
// only the first time its identifier is seen. This keeps angle fairness
// at every rank tier; an item ranked highly by any single angle lands at
// the position of its earliest (best) occurrence.
func Merge(lists ...[]versestore.CandidateVerse) []versestore.CandidateVerse {
	maxLen := 0
	for _, list := range lists {
		if len(list) > maxLen {
			maxLen = len(list)
		}
	}

	merged := make([]versestore.CandidateVerse, 0, maxLen*len(lists))
	seen := make(map[string]bool)

	for pos := 0; pos < maxLen; pos++ {
		for _, list := range lists {
			if pos >= len(list) {
				continue
			}
			candidate := list[pos]
			if seen[candidate.ID] {
				continue
			}
			seen[candidate.ID] = true
			merged = append(merged, candidate)
		}
	}

	return merged
}

// Diversify filters the merged sequence so no surah contributes more
// than perSurahCap candidates, preserving relative order, then truncates
// to maxTotal. One dominant surah must not crowd out thematically
// distinct but lower-scored verses, and the result bounds prompt size
// for the selector.
func Diversify(merged []versestore.CandidateVerse, perSurahCap, maxTotal int) []versestore.CandidateVerse {
	if perSurahCap <= 0 {
		perSurahCap = 2
	}
	if maxTotal <= 0 {
		maxTotal = 25
	}

	perSurah := make(map[string]int)
	curated := make([]versestore.CandidateVerse, 0, maxTotal)

	for _, candidate := range merged {
		key := candidate.CategoryKey()
		if perSurah[key] >= perSurahCap {
			continue
		}
		perSurah[key]++
		curated = append(curated, candidate)
		if len(curated) >= maxTotal {
			break
		}
	}

	return curated
}
