package selector

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/pkg/llm"
	"ayat-reflection-be/pkg/reflection"
	"ayat-reflection-be/pkg/versestore"
)

const maxSelected = 3

// Selection is the validated outcome of the final LLM call. When
// Relevant is false only Message is set; otherwise SelectedIDs keeps
// the model's ordering and Resonance maps id to a one-line note.
type Selection struct {
	Relevant    bool
	Message     string
	Reflection  string
	SelectedIDs []string
	Resonance   map[string]string
}

// candidateView is what the model sees per verse. Arabic text is
// withheld: it adds tokens without helping selection.
type candidateView struct {
	ID            string `json:"id"`
	SurahName     string `json:"surah_name"`
	VerseNumber   int    `json:"verse_number"`
	Translation   string `json:"translation"`
	TafsirSummary string `json:"tafsir_summary,omitempty"`
}

type selectionPayload struct {
	Relevant    *bool             `json:"relevant"`
	Message     string            `json:"message"`
	Reflection  string            `json:"reflection"`
	SelectedIDs []string          `json:"selected_ids"`
	Resonance   map[string]string `json:"resonance"`
}

// Selector runs the selection call over curated candidates. The model
// never generates verse text, only picks ids, so its output is treated
// as untrusted and validated against the candidate set.
type Selector struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewSelector(llmProvider llm.LLMProvider, logger *log.Logger) *Selector {
	return &Selector{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Select asks the model to gate relevance, pick up to three verse ids
// from candidates, and write the reflection. Returns
// reflection.ErrSelectionFormat when the response breaks the contract
// and reflection.ErrEmptyResult when no picked id survives validation.
func (s *Selector) Select(
	ctx context.Context,
	candidates []versestore.CandidateVerse,
	rawText string,
) (*Selection, error) {

	prompt, err := buildPrompt(candidates)
	if err != nil {
		return nil, err
	}

	messages := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: prompt},
		{Role: constant.ChatMessageRoleUser, Content: rawText},
	}

	response, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(500),
		llm.WithJSONOutput(),
	)
	if err != nil {
		return nil, fmt.Errorf("selection call: %w", err)
	}

	return s.parse(response, candidates)
}

func buildPrompt(candidates []versestore.CandidateVerse) (string, error) {
	views := make([]candidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, candidateView{
			ID:            c.ID,
			SurahName:     c.SurahName,
			VerseNumber:   c.VerseNumber,
			Translation:   c.Translation,
			TafsirSummary: c.TafsirSummary,
		})
	}

	encoded, err := json.Marshal(views)
	if err != nil {
		return "", fmt.Errorf("encode candidates: %w", err)
	}

	return strings.Replace(constant.SelectorPromptTemplate, "{{CANDIDATES}}", string(encoded), 1), nil
}

func (s *Selector) parse(response string, candidates []versestore.CandidateVerse) (*Selection, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", reflection.ErrSelectionFormat)
	}

	var payload selectionPayload
	if err := json.Unmarshal([]byte(jsonContent), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", reflection.ErrSelectionFormat, err)
	}
	if payload.Relevant == nil {
		return nil, fmt.Errorf("%w: missing relevant field", reflection.ErrSelectionFormat)
	}

	if !*payload.Relevant {
		message := strings.TrimSpace(payload.Message)
		if message == "" {
			message = constant.MsgGateFallback
		}
		return &Selection{Relevant: false, Message: message}, nil
	}

	reflectionText := strings.TrimSpace(payload.Reflection)
	if reflectionText == "" {
		return nil, fmt.Errorf("%w: relevant response without reflection", reflection.ErrSelectionFormat)
	}
	if len(payload.SelectedIDs) == 0 {
		return nil, fmt.Errorf("%w: relevant response without selected_ids", reflection.ErrSelectionFormat)
	}

	known := make(map[string]versestore.CandidateVerse, len(candidates))
	for _, c := range candidates {
		known[c.ID] = c
	}

	usedSurah := make(map[string]bool)
	seen := make(map[string]bool)
	selected := make([]string, 0, maxSelected)
	for _, id := range payload.SelectedIDs {
		if len(selected) == maxSelected {
			break
		}
		candidate, ok := known[id]
		if !ok {
			// A fabricated or mistyped id never reaches the response.
			s.logger.Printf("[WARN] Selection returned unknown verse id %q, dropping", id)
			continue
		}
		if seen[id] {
			continue
		}
		if usedSurah[candidate.CategoryKey()] {
			s.logger.Printf("[SELECT] Dropping %s, surah already represented", id)
			continue
		}
		seen[id] = true
		usedSurah[candidate.CategoryKey()] = true
		selected = append(selected, id)
	}

	if len(selected) == 0 {
		return nil, reflection.ErrEmptyResult
	}

	resonance := make(map[string]string, len(selected))
	for _, id := range selected {
		if note := strings.TrimSpace(payload.Resonance[id]); note != "" {
			resonance[id] = note
		}
	}

	return &Selection{
		Relevant:    true,
		Reflection:  reflectionText,
		SelectedIDs: selected,
		Resonance:   resonance,
	}, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
