package expand

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
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

// echoLLM answers with the user message so tests can see which source
// text each angle carried.
type echoLLM struct{}

func (echoLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return "expanded: " + messages[len(messages)-1].Content, nil
}

func (echoLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return "expanded: " + prompt, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestBuildAngles_SingleNeedUsesFixedTriple(t *testing.T) {
	angles := BuildAngles("aku lelah sekali", nil)

	assert.Len(t, angles, 3)
	assert.Equal(t, "emotional", angles[0].Label)
	assert.Equal(t, "situational", angles[1].Label)
	assert.Equal(t, "hope", angles[2].Label)
	for _, a := range angles {
		assert.Equal(t, "aku lelah sekali", a.Source)
	}
}

func TestBuildAngles_TwoNeedsPaddedWithHope(t *testing.T) {
	angles := BuildAngles("capek dan pusing uang", []string{"kelelahan mengasuh anak", "masalah keuangan"})

	assert.Len(t, angles, 3)
	assert.Equal(t, "need", angles[0].Label)
	assert.Equal(t, "kelelahan mengasuh anak", angles[0].Source)
	assert.Equal(t, "need", angles[1].Label)
	assert.Equal(t, "masalah keuangan", angles[1].Source)
	assert.Equal(t, "hope", angles[2].Label)
	assert.Equal(t, "capek dan pusing uang", angles[2].Source)
}

func TestBuildAngles_ThreeNeedsFillAllSlots(t *testing.T) {
	angles := BuildAngles("teks", []string{"a", "b", "c"})

	assert.Len(t, angles, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, "need", angles[i].Label)
		assert.Equal(t, want, angles[i].Source)
	}
}

func TestExpand_FallsBackToSourceOnError(t *testing.T) {
	e := NewExpander(&stubLLM{err: errors.New("timeout")}, discardLogger())

	got := e.Expand(context.Background(), Angle{Label: "emotional", Source: "aku sedih"})

	assert.Equal(t, "aku sedih", got)
}

func TestExpand_FallsBackToSourceOnEmptyResponse(t *testing.T) {
	e := NewExpander(&stubLLM{response: ""}, discardLogger())

	got := e.Expand(context.Background(), Angle{Label: "hope", Source: "aku sedih"})

	assert.Equal(t, "aku sedih", got)
}

func TestExpandAll_PreservesAngleOrder(t *testing.T) {
	e := NewExpander(echoLLM{}, discardLogger())
	angles := BuildAngles("teks", []string{"pertama", "kedua", "ketiga"})

	texts := e.ExpandAll(context.Background(), angles)

	assert.Len(t, texts, 3)
	for i, want := range []string{"pertama", "kedua", "ketiga"} {
		assert.True(t, strings.HasSuffix(texts[i], want), "slot %d got %q", i, texts[i])
	}
}
