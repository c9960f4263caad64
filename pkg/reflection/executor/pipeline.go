package executor

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"ayat-reflection-be/pkg/embedding"
	"ayat-reflection-be/pkg/llm"
	"ayat-reflection-be/pkg/reflection"
	"ayat-reflection-be/pkg/reflection/curate"
	"ayat-reflection-be/pkg/reflection/expand"
	"ayat-reflection-be/pkg/reflection/intent"
	"ayat-reflection-be/pkg/reflection/selector"
	"ayat-reflection-be/pkg/versestore"
)

// Config carries the retrieval knobs. Zero values fall back to defaults.
type Config struct {
	SearchLimit   int // candidates fetched per angle
	PerSurahCap   int // curated candidates allowed per surah
	MaxCandidates int // curated candidates shown to the selector
}

const (
	defaultSearchLimit   = 20
	defaultPerSurahCap   = 2
	defaultMaxCandidates = 25
)

func (c Config) withDefaults() Config {
	if c.SearchLimit <= 0 {
		c.SearchLimit = defaultSearchLimit
	}
	if c.PerSurahCap <= 0 {
		c.PerSurahCap = defaultPerSurahCap
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = defaultMaxCandidates
	}
	return c
}

// PipelineExecutor orchestrates the retrieval pipeline:
// Phase 1: need decomposition -> Phase 2: HyDE expansion ->
// Phase 3: embedding -> Phase 4: hybrid search -> Phase 5: curation ->
// Phase 6: gated selection.
type PipelineExecutor struct {
	decomposer *intent.Decomposer
	expander   *expand.Expander
	embedder   embedding.EmbeddingProvider
	store      versestore.Store
	selector   *selector.Selector
	config     Config
	logger     *log.Logger
}

func NewPipelineExecutor(
	llmProvider llm.LLMProvider,
	embedder embedding.EmbeddingProvider,
	store versestore.Store,
	config Config,
	logger *log.Logger,
) *PipelineExecutor {
	return &PipelineExecutor{
		decomposer: intent.NewDecomposer(llmProvider, logger),
		expander:   expand.NewExpander(llmProvider, logger),
		embedder:   embedder,
		store:      store,
		selector:   selector.NewSelector(llmProvider, logger),
		config:     config.withDefaults(),
		logger:     logger,
	}
}

// ExecutionResult is the pipeline's answer. When NotRelevant is set only
// Message carries content; otherwise Verses holds the selected
// candidates in the selector's order.
type ExecutionResult struct {
	NotRelevant bool
	Message     string
	Reflection  string
	Verses      []versestore.CandidateVerse
	Resonance   map[string]string
}

// Execute runs the full pipeline over one query. Decomposition and
// expansion degrade silently; embedding and retrieval failures surface
// as reflection.ErrHardRetrieval so the caller can map them to a
// generic error.
func (p *PipelineExecutor) Execute(ctx context.Context, rawText string) (*ExecutionResult, error) {
	p.logger.Printf("[PIPELINE] Starting execution for query: %s", truncate(rawText, 50))

	// Phase 1: need decomposition (soft).
	needs := p.decomposer.Decompose(ctx, rawText)

	// Phase 2: HyDE expansion per angle (soft, concurrent).
	angles := expand.BuildAngles(rawText, needs)
	searchTexts := p.expander.ExpandAll(ctx, angles)

	// Phase 3: embeddings, all or nothing. A partial embedding set
	// would silently skew the merge toward the surviving angles.
	vectors, err := p.embedAll(ctx, searchTexts)
	if err != nil {
		p.logger.Printf("[ERROR] Embedding failed: %v", err)
		return nil, fmt.Errorf("%w: %v", reflection.ErrHardRetrieval, err)
	}

	// Phase 4: hybrid search per angle, tolerating partial failures.
	// The lexical leg stays anchored to the user's own words; only the
	// vectors carry the expanded descriptions.
	lists := p.searchAll(ctx, vectors, rawText)

	// Phase 5: curation.
	merged := curate.Merge(lists...)
	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: no candidates from any angle", reflection.ErrHardRetrieval)
	}
	curated := curate.Diversify(merged, p.config.PerSurahCap, p.config.MaxCandidates)

	p.logger.Printf("[PIPELINE] Curated %d candidates from %d merged", len(curated), len(merged))

	// Phase 6: gated selection.
	selection, err := p.selector.Select(ctx, curated, rawText)
	if err != nil {
		return nil, err
	}

	if !selection.Relevant {
		p.logger.Printf("[PIPELINE] Relevance gate rejected query")
		return &ExecutionResult{NotRelevant: true, Message: selection.Message}, nil
	}

	byID := make(map[string]versestore.CandidateVerse, len(curated))
	for _, c := range curated {
		byID[c.ID] = c
	}
	verses := make([]versestore.CandidateVerse, 0, len(selection.SelectedIDs))
	for _, id := range selection.SelectedIDs {
		verses = append(verses, byID[id])
	}

	p.logger.Printf("[PIPELINE] Selected %d verses", len(verses))

	return &ExecutionResult{
		Reflection: selection.Reflection,
		Verses:     verses,
		Resonance:  selection.Resonance,
	}, nil
}

func (p *PipelineExecutor) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			vec, err := p.embedder.Generate(gctx, text)
			if err != nil {
				return err
			}
			vectors[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (p *PipelineExecutor) searchAll(ctx context.Context, vectors [][]float32, rawText string) [][]versestore.CandidateVerse {
	lists := make([][]versestore.CandidateVerse, len(vectors))

	var wg sync.WaitGroup
	for i := range vectors {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			candidates, err := p.store.HybridSearch(ctx, vectors[i], rawText, p.config.SearchLimit)
			if err != nil {
				p.logger.Printf("[WARN] Hybrid search failed for angle %d: %v", i, err)
				return
			}
			lists[i] = candidates
		}(i)
	}
	wg.Wait()

	return lists
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
