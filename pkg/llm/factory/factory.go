package factory

import (
	"fmt"

	"ayat-reflection-be/pkg/llm"
	"ayat-reflection-be/pkg/llm/ollama"
	"ayat-reflection-be/pkg/llm/openai"
)

// NewLLMProvider selects the chat backend by config string.
func NewLLMProvider(provider, model, openAIKey, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch provider {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return openai.NewOpenAIProvider(openAIKey, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
