package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ayat-reflection-be/pkg/versestore"
)

// Client talks to the Supabase REST surface: the match_verses_hybrid
// stored procedure for retrieval, the verses table for finalist tafsir,
// and the analytics_events table for the event sink. The stored
// procedure is opaque here; we only rely on it returning a ranked list.
type Client struct {
	BaseURL string
	AnonKey string
	Client  *http.Client
}

var (
	_ versestore.Store         = &Client{}
	_ versestore.AnalyticsSink = &Client{}
)

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		AnonKey: anonKey,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type hybridSearchRequest struct {
	QueryEmbedding []float32 `json:"query_embedding"`
	QueryText      string    `json:"query_text"`
	MatchCount     int       `json:"match_count"`
}

func (c *Client) HybridSearch(ctx context.Context, vector []float32, rawText string, limit int) ([]versestore.CandidateVerse, error) {
	body, err := json.Marshal(hybridSearchRequest{
		QueryEmbedding: vector,
		QueryText:      rawText,
		MatchCount:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := c.do(ctx, "POST", "/rest/v1/rpc/match_verses_hybrid", nil, body)
	if err != nil {
		return nil, err
	}

	var candidates []versestore.CandidateVerse
	if err := json.Unmarshal(respBody, &candidates); err != nil {
		return nil, fmt.Errorf("unmarshal search results: %w", err)
	}
	return candidates, nil
}

func (c *Client) FetchTafsir(ctx context.Context, ids []string) (map[string]versestore.TafsirDetail, error) {
	if len(ids) == 0 {
		return map[string]versestore.TafsirDetail{}, nil
	}

	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = `"` + id + `"`
	}
	query := url.Values{}
	query.Set("select", "id,tafsir_kemenag,tafsir_ibn_kathir")
	query.Set("id", fmt.Sprintf("in.(%s)", strings.Join(quoted, ",")))

	respBody, err := c.do(ctx, "GET", "/rest/v1/verses", query, nil)
	if err != nil {
		return nil, err
	}

	var rows []versestore.TafsirDetail
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal tafsir rows: %w", err)
	}

	details := make(map[string]versestore.TafsirDetail, len(rows))
	for _, row := range rows {
		details[row.ID] = row
	}
	return details, nil
}

func (c *Client) InsertEvent(ctx context.Context, event versestore.AnalyticsEvent) error {
	body, err := json.Marshal(map[string]interface{}{
		"id":         event.ID,
		"event_type": event.EventType,
		"properties": event.Properties,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = c.do(ctx, "POST", "/rest/v1/analytics_events", nil, body)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.AnonKey)
	req.Header.Set("Authorization", "Bearer "+c.AnonKey)
	if method == "POST" && path == "/rest/v1/analytics_events" {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("supabase error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
