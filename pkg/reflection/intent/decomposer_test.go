package intent

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"ayat-reflection-be/pkg/llm"
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

func newTestDecomposer(response string, err error) *Decomposer {
	return NewDecomposer(&stubLLM{response: response, err: err}, log.New(io.Discard, "", 0))
}

func TestDecompose_MultipleNeeds(t *testing.T) {
	d := newTestDecomposer(`["kelelahan mengasuh anak", "kekhawatiran soal keuangan"]`, nil)

	needs := d.Decompose(context.Background(), "capek ngurus anak dan pusing mikirin uang")

	assert.Equal(t, []string{"kelelahan mengasuh anak", "kekhawatiran soal keuangan"}, needs)
}

func TestDecompose_SingleNeedCollapsesToNil(t *testing.T) {
	d := newTestDecomposer(`["kesedihan karena kehilangan"]`, nil)

	needs := d.Decompose(context.Background(), "aku sedih sekali")

	assert.Nil(t, needs)
}

func TestDecompose_ProviderErrorCollapsesToNil(t *testing.T) {
	d := newTestDecomposer("", errors.New("connection refused"))

	assert.Nil(t, d.Decompose(context.Background(), "aku lelah"))
}

func TestDecompose_MalformedJSONCollapsesToNil(t *testing.T) {
	for _, response := range []string{
		"maaf, saya tidak bisa membantu",
		`[1, 2, 3]`,
		`["   ", ""]`,
	} {
		d := newTestDecomposer(response, nil)
		assert.Nil(t, d.Decompose(context.Background(), "teks"), "response: %s", response)
	}
}

func TestDecompose_StripsSurroundingProse(t *testing.T) {
	d := newTestDecomposer(
		"Berikut hasilnya:\n[\"rasa bersalah\", \"masalah keluarga\"]\nSemoga membantu.",
		nil,
	)

	needs := d.Decompose(context.Background(), "aku merasa bersalah pada keluargaku")

	assert.Equal(t, []string{"rasa bersalah", "masalah keluarga"}, needs)
}

func TestDecompose_OversizedArrayCollapsesToNil(t *testing.T) {
	d := newTestDecomposer(`["a", "b", "c", "d", "e"]`, nil)

	assert.Nil(t, d.Decompose(context.Background(), "banyak masalah"))
}

func TestDecompose_ThreeNeedsAccepted(t *testing.T) {
	d := newTestDecomposer(`["a", "b", "c"]`, nil)

	assert.Equal(t, []string{"a", "b", "c"}, d.Decompose(context.Background(), "banyak masalah"))
}
