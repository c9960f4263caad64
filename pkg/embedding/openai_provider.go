package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenAIProvider embeds text with the OpenAI embeddings endpoint. The
// corpus index was built with text-embedding-3-small at 1536 dimensions,
// so query vectors must come from the same model and dimensionality.
type OpenAIProvider struct {
	BaseURL    string
	ApiKey     string
	ModelName  string
	Dimensions int
	Client     *http.Client
}

var _ EmbeddingProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, modelName string, dimensions int) *OpenAIProvider {
	return &OpenAIProvider{
		BaseURL:    "https://api.openai.com/v1",
		ApiKey:     apiKey,
		ModelName:  modelName,
		Dimensions: dimensions,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type openAIEmbeddingRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Dimensions     int    `json:"dimensions,omitempty"`
	EncodingFormat string `json:"encoding_format"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	reqPayload := openAIEmbeddingRequest{
		Model:          p.ModelName,
		Input:          text,
		Dimensions:     p.Dimensions,
		EncodingFormat: "float",
	}
	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL+"/embeddings", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.ApiKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var embResp openAIEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &embResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(embResp.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no vectors")
	}

	return embResp.Data[0].Embedding, nil
}
