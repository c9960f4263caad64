package expand

import (
	"context"
	"log"
	"sync"

	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/pkg/llm"
)

// angleCount is fixed: every query fans out to exactly three retrieval
// angles so downstream merging stays uniform.
const angleCount = 3

// Angle is one retrieval perspective on the user's text. Source is what
// gets embedded when expansion fails.
type Angle struct {
	Label       string
	Instruction string
	Source      string
}

// BuildAngles produces the three retrieval angles for a query. With a
// multi-need decomposition each need becomes its own angle (padded with
// a hope angle on the whole text when fewer than three needs). With a
// single need the fixed emotional/situational/hope triple applies.
func BuildAngles(rawText string, needs []string) []Angle {
	if len(needs) >= 2 {
		angles := make([]Angle, 0, angleCount)
		for _, need := range needs {
			if len(angles) == angleCount {
				break
			}
			angles = append(angles, Angle{
				Label:       "need",
				Instruction: constant.HydeNeedAngle,
				Source:      need,
			})
		}
		for len(angles) < angleCount {
			angles = append(angles, Angle{
				Label:       "hope",
				Instruction: constant.HydeHopeAngle,
				Source:      rawText,
			})
		}
		return angles
	}

	return []Angle{
		{Label: "emotional", Instruction: constant.HydeEmotionalAngle, Source: rawText},
		{Label: "situational", Instruction: constant.HydeSituationalAngle, Source: rawText},
		{Label: "hope", Instruction: constant.HydeHopeAngle, Source: rawText},
	}
}

// Expander rewrites each angle into a hypothetical verse description
// whose embedding lands closer to the corpus than raw emotional text.
type Expander struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewExpander(llmProvider llm.LLMProvider, logger *log.Logger) *Expander {
	return &Expander{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Expand produces the search text for one angle. On any provider error
// the angle's source text is returned unchanged, so retrieval proceeds
// without expansion.
func (e *Expander) Expand(ctx context.Context, angle Angle) string {
	messages := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: angle.Instruction},
		{Role: constant.ChatMessageRoleUser, Content: angle.Source},
	}

	response, err := e.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(120),
	)
	if err != nil {
		e.logger.Printf("[WARN] HyDE expansion failed for %s angle, embedding raw text: %v", angle.Label, err)
		return angle.Source
	}
	if response == "" {
		return angle.Source
	}
	return response
}

// ExpandAll expands every angle concurrently and returns the search
// texts in angle order. Individual failures degrade per angle, never
// fail the batch.
func (e *Expander) ExpandAll(ctx context.Context, angles []Angle) []string {
	texts := make([]string, len(angles))

	var wg sync.WaitGroup
	for i, angle := range angles {
		wg.Add(1)
		go func(i int, angle Angle) {
			defer wg.Done()
			texts[i] = e.Expand(ctx, angle)
		}(i, angle)
	}
	wg.Wait()

	return texts
}
