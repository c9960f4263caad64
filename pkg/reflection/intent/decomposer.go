package intent

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/pkg/llm"
)

const maxNeeds = 3

// Decomposer splits a free-text outpouring into distinct needs so each
// need gets its own retrieval pass. It is a soft phase: any failure
// (transport, malformed JSON, junk entries) collapses to nil and the
// caller falls back to whole-text retrieval.
type Decomposer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewDecomposer(llmProvider llm.LLMProvider, logger *log.Logger) *Decomposer {
	return &Decomposer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Decompose returns 2..3 distinct needs, or nil when the text carries a
// single need or the call fails. Temperature 0 keeps the split stable
// for the result cache.
func (d *Decomposer) Decompose(ctx context.Context, rawText string) []string {
	prompt := constant.DecomposePrompt + rawText

	response, err := d.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(150),
	)
	if err != nil {
		d.logger.Printf("[WARN] Need decomposition failed, using whole text: %v", err)
		return nil
	}

	needs, err := parseNeeds(response)
	if err != nil {
		d.logger.Printf("[WARN] Need decomposition unparseable, using whole text: %v", err)
		return nil
	}

	if len(needs) < 2 {
		// A single need means the whole text already is the query.
		return nil
	}

	d.logger.Printf("[INTENT] Decomposed into %d needs: %v", len(needs), needs)
	return needs
}

func parseNeeds(response string) ([]string, error) {
	jsonContent := extractJSONArray(response)
	if jsonContent == "" {
		return nil, errNoArray
	}

	var raw []string
	if err := json.Unmarshal([]byte(jsonContent), &raw); err != nil {
		return nil, err
	}

	needs := make([]string, 0, len(raw))
	for _, n := range raw {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		needs = append(needs, n)
	}

	if len(needs) == 0 {
		return nil, errEmptyArray
	}
	// An oversized split means the model ignored the instructions;
	// trust the whole text over a made-up list.
	if len(needs) > maxNeeds {
		return nil, errTooManyNeeds
	}
	return needs, nil
}

func extractJSONArray(response string) string {
	startIdx := strings.Index(response, "[")
	endIdx := strings.LastIndex(response, "]")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
