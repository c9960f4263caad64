package dto

type VerseOfDayResponse struct {
	ID          string `json:"id"`
	Ref         string `json:"ref"`
	SurahName   string `json:"surah_name"`
	VerseNumber int    `json:"verse_number"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	Theme       string `json:"theme,omitempty"`
}
