package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/internal/dto"
	"ayat-reflection-be/pkg/embedding"
	"ayat-reflection-be/pkg/llm"
	"ayat-reflection-be/pkg/ratelimit"
	"ayat-reflection-be/pkg/reflection/executor"
	"ayat-reflection-be/pkg/resultcache"
	"ayat-reflection-be/pkg/versestore"
)

// IAyatService defines the verse reflection service interface
type IAyatService interface {
	// GetAyat resolves one outpouring into a reflection response. The
	// bool reports whether the response came from the result cache.
	GetAyat(ctx context.Context, identity string, request *dto.GetAyatRequest) (*dto.GetAyatResponse, bool, error)
}

// pipelineRunner is what the service needs from the retrieval pipeline.
type pipelineRunner interface {
	Execute(ctx context.Context, rawText string) (*executor.ExecutionResult, error)
}

type ayatService struct {
	pipeline  pipelineRunner
	store     versestore.Store
	limiter   ratelimit.Limiter
	cache     *resultcache.Cache
	llmLogger *log.Logger
}

// NewAyatService wires the retrieval pipeline with its gatekeepers.
func NewAyatService(
	llmProvider llm.LLMProvider,
	embeddingProvider embedding.EmbeddingProvider,
	store versestore.Store,
	limiter ratelimit.Limiter,
	cache *resultcache.Cache,
	pipelineConfig executor.Config,
) IAyatService {
	llmLogger := initLLMLogger()

	return &ayatService{
		pipeline:  executor.NewPipelineExecutor(llmProvider, embeddingProvider, store, pipelineConfig, llmLogger),
		store:     store,
		limiter:   limiter,
		cache:     cache,
		llmLogger: llmLogger,
	}
}

func (s *ayatService) GetAyat(ctx context.Context, identity string, request *dto.GetAyatRequest) (*dto.GetAyatResponse, bool, error) {
	feeling := strings.TrimSpace(request.Feeling)
	if utf8.RuneCountInString(feeling) < 3 {
		return nil, false, &dto.ValidationError{Message: constant.MsgValidationTooShort}
	}

	if !s.limiter.Admit(identity) {
		s.llmLogger.Printf("[LIMIT] Rejected identity %s", identity)
		return nil, false, &dto.RateLimitedError{}
	}

	// The cache key ignores casing and spacing so the fixed emotion
	// cards always hit the same entry.
	key := resultcache.NormalizeKey(feeling)
	if cached, ok := s.cache.Get(key); ok {
		if response, ok := cached.(*dto.GetAyatResponse); ok {
			s.llmLogger.Printf("[CACHE] Hit for key: %s", truncate(key, 50))
			return response, true, nil
		}
	}

	result, err := s.pipeline.Execute(ctx, feeling)
	if err != nil {
		return nil, false, err
	}

	var response *dto.GetAyatResponse
	if result.NotRelevant {
		response = &dto.GetAyatResponse{NotRelevant: true, Message: result.Message}
	} else {
		response = &dto.GetAyatResponse{
			Reflection: result.Reflection,
			Ayat:       s.assembleAyat(ctx, result),
		}
	}

	s.cache.Put(key, response)
	return response, false, nil
}

// assembleAyat joins the selected candidates with their tafsir detail.
// The detail fetch is best effort: on failure the response ships with
// summaries only.
func (s *ayatService) assembleAyat(ctx context.Context, result *executor.ExecutionResult) []dto.AyatDTO {
	ids := make([]string, 0, len(result.Verses))
	for _, v := range result.Verses {
		ids = append(ids, v.ID)
	}

	details, err := s.store.FetchTafsir(ctx, ids)
	if err != nil {
		s.llmLogger.Printf("[WARN] Tafsir fetch failed, shipping without detail: %v", err)
		details = nil
	}

	ayat := make([]dto.AyatDTO, 0, len(result.Verses))
	for _, v := range result.Verses {
		item := dto.AyatDTO{
			ID:            v.ID,
			Ref:           verseRef(v.SurahName, v.VerseNumber),
			SurahName:     v.SurahName,
			VerseNumber:   v.VerseNumber,
			Arabic:        v.Arabic,
			Translation:   v.Translation,
			Resonance:     result.Resonance[v.ID],
			TafsirSummary: v.TafsirSummary,
		}
		if detail, ok := details[v.ID]; ok {
			item.TafsirKemenag = detail.TafsirKemenag
			item.TafsirIbnKathir = detail.TafsirIbnKathir
		}
		ayat = append(ayat, item)
	}
	return ayat
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_reflection.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-REFLECTION] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
