package service

import "fmt"

// verseRef renders the display reference, e.g. "QS. Al-Baqarah : 286".
func verseRef(surahName string, verseNumber int) string {
	return fmt.Sprintf("QS. %s : %d", surahName, verseNumber)
}
