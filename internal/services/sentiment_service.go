package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
)

// SentimentService calls the external text-sentiment/advice service. It is
// best-effort from the caller's perspective: any transport failure or non-2xx
// response is an error here, and callers convert it to "no result".
type SentimentService struct {
	baseURL string
	client  *http.Client
}

// NewSentimentService creates a client for the sentiment service.
func NewSentimentService(baseURL string, timeout time.Duration) *SentimentService {
	return &SentimentService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type analyzeResponse struct {
	Positive   *float64 `json:"positive"`
	Pos        *float64 `json:"pos"`
	Neutral    *float64 `json:"neutral"`
	Neu        *float64 `json:"neu"`
	Negative   *float64 `json:"negative"`
	Neg        *float64 `json:"neg"`
	Label      string   `json:"label"`
	Prediction string   `json:"prediction"`
	Model      string   `json:"model"`
	Version    string   `json:"version"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
	Model  string `json:"model"`
	Source string `json:"source"`
}

// Analyze returns sentiment probabilities and a label for the text.
// Empty text yields (nil, nil) without a network call.
func (s *SentimentService) Analyze(ctx context.Context, text string) (*domain.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var resp analyzeResponse
	if err := s.post(ctx, "/analyze", map[string]any{"text": text}, &resp); err != nil {
		return nil, err
	}

	result := &domain.SentimentResult{
		Positive: coalesce(resp.Positive, resp.Pos),
		Neutral:  coalesce(resp.Neutral, resp.Neu),
		Negative: coalesce(resp.Negative, resp.Neg),
		Label:    resp.Label,
		Model:    resp.Model,
		Version:  resp.Version,
	}
	if result.Label == "" {
		result.Label = resp.Prediction
	}
	if result.Model == "" {
		result.Model = "unknown"
	}
	return result, nil
}

// Advise returns a short advice text derived from the note and emoji.
// Empty text yields (nil, nil) without a network call.
func (s *SentimentService) Advise(ctx context.Context, text, emoji string) (*domain.AdviceResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var resp adviceResponse
	if err := s.post(ctx, "/advice", map[string]any{"text": text, "emoji": emoji}, &resp); err != nil {
		return nil, err
	}

	return &domain.AdviceResult{
		Advice: resp.Advice,
		Model:  resp.Model,
		Source: resp.Source,
	}, nil
}

func (s *SentimentService) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sentiment service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func coalesce(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
