package selector

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/pkg/llm"
	"ayat-reflection-be/pkg/reflection"
	"ayat-reflection-be/pkg/versestore"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func newTestSelector(response string, err error) *Selector {
	return NewSelector(&stubLLM{response: response, err: err}, log.New(io.Discard, "", 0))
}

func testCandidates() []versestore.CandidateVerse {
	return []versestore.CandidateVerse{
		{ID: "2:286", SurahName: "Al-Baqarah", VerseNumber: 286, Translation: "Allah tidak membebani seseorang melainkan sesuai dengan kesanggupannya."},
		{ID: "2:153", SurahName: "Al-Baqarah", VerseNumber: 153, Translation: "Mohonlah pertolongan dengan sabar dan salat."},
		{ID: "94:5", SurahName: "Asy-Syarh", VerseNumber: 5, Translation: "Sesungguhnya beserta kesulitan ada kemudahan."},
		{ID: "13:28", SurahName: "Ar-Ra'd", VerseNumber: 28, Translation: "Dengan mengingat Allah hati menjadi tenteram."},
	}
}

func TestSelect_HappyPath(t *testing.T) {
	s := newTestSelector(`{
		"relevant": true,
		"reflection": "Semoga ayat ini bisa menemanimu.",
		"selected_ids": ["94:5", "13:28"],
		"resonance": {"94:5": "Kesulitanmu tidak abadi.", "13:28": "Ketenangan datang dari mengingat-Nya."}
	}`, nil)

	sel, err := s.Select(context.Background(), testCandidates(), "aku lelah sekali")

	assert.NoError(t, err)
	assert.True(t, sel.Relevant)
	assert.Equal(t, "Semoga ayat ini bisa menemanimu.", sel.Reflection)
	assert.Equal(t, []string{"94:5", "13:28"}, sel.SelectedIDs)
	assert.Equal(t, "Kesulitanmu tidak abadi.", sel.Resonance["94:5"])
}

func TestSelect_GateRejectsOffTopicInput(t *testing.T) {
	s := newTestSelector(`{"relevant": false, "message": "Ceritakan perasaanmu, ya."}`, nil)

	sel, err := s.Select(context.Background(), testCandidates(), "berapa 2+2?")

	assert.NoError(t, err)
	assert.False(t, sel.Relevant)
	assert.Equal(t, "Ceritakan perasaanmu, ya.", sel.Message)
	assert.Empty(t, sel.SelectedIDs)
}

func TestSelect_GateRejectionWithoutMessageGetsFallback(t *testing.T) {
	s := newTestSelector(`{"relevant": false}`, nil)

	sel, err := s.Select(context.Background(), testCandidates(), "asdf qwerty")

	assert.NoError(t, err)
	assert.Equal(t, constant.MsgGateFallback, sel.Message)
}

func TestSelect_DropsFabricatedIDs(t *testing.T) {
	s := newTestSelector(`{
		"relevant": true,
		"reflection": "Refleksi.",
		"selected_ids": ["99:99", "94:5"]
	}`, nil)

	sel, err := s.Select(context.Background(), testCandidates(), "aku sedih")

	assert.NoError(t, err)
	assert.Equal(t, []string{"94:5"}, sel.SelectedIDs)
}

func TestSelect_AllFabricatedIDsIsEmptyResult(t *testing.T) {
	s := newTestSelector(`{
		"relevant": true,
		"reflection": "Refleksi.",
		"selected_ids": ["99:99", "98:1"]
	}`, nil)

	_, err := s.Select(context.Background(), testCandidates(), "aku sedih")

	assert.ErrorIs(t, err, reflection.ErrEmptyResult)
}

func TestSelect_OneVersePerSurah(t *testing.T) {
	s := newTestSelector(`{
		"relevant": true,
		"reflection": "Refleksi.",
		"selected_ids": ["2:286", "2:153", "94:5"]
	}`, nil)

	sel, err := s.Select(context.Background(), testCandidates(), "aku lelah")

	assert.NoError(t, err)
	assert.Equal(t, []string{"2:286", "94:5"}, sel.SelectedIDs)
}

func TestSelect_CapsAtThreeVerses(t *testing.T) {
	candidates := []versestore.CandidateVerse{
		{ID: "1:1", SurahName: "Al-Fatihah", VerseNumber: 1},
		{ID: "2:1", SurahName: "Al-Baqarah", VerseNumber: 1},
		{ID: "3:1", SurahName: "Ali 'Imran", VerseNumber: 1},
		{ID: "4:1", SurahName: "An-Nisa'", VerseNumber: 1},
	}
	s := newTestSelector(`{
		"relevant": true,
		"reflection": "Refleksi.",
		"selected_ids": ["1:1", "2:1", "3:1", "4:1"]
	}`, nil)

	sel, err := s.Select(context.Background(), candidates, "aku lelah")

	assert.NoError(t, err)
	assert.Equal(t, []string{"1:1", "2:1", "3:1"}, sel.SelectedIDs)
}

func TestSelect_MalformedResponses(t *testing.T) {
	cases := map[string]string{
		"no JSON":            "maaf, tidak bisa",
		"missing relevant":   `{"reflection": "x", "selected_ids": ["94:5"]}`,
		"missing reflection": `{"relevant": true, "selected_ids": ["94:5"]}`,
		"empty selection":    `{"relevant": true, "reflection": "x", "selected_ids": []}`,
	}
	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestSelector(response, nil).Select(context.Background(), testCandidates(), "aku sedih")
			assert.ErrorIs(t, err, reflection.ErrSelectionFormat)
		})
	}
}

func TestSelect_ProviderErrorPropagates(t *testing.T) {
	wantErr := errors.New("status 500")
	_, err := newTestSelector("", wantErr).Select(context.Background(), testCandidates(), "aku sedih")

	assert.ErrorIs(t, err, wantErr)
}

func TestSelect_ResonanceOnlyForSelected(t *testing.T) {
	s := newTestSelector(`{
		"relevant": true,
		"reflection": "Refleksi.",
		"selected_ids": ["94:5"],
		"resonance": {"94:5": "cocok", "2:286": "tidak terpilih"}
	}`, nil)

	sel, err := s.Select(context.Background(), testCandidates(), "aku sedih")

	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"94:5": "cocok"}, sel.Resonance)
}
