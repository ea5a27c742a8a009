package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Errorf("path = %q, want /analyze", r.URL.Path)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if payload["text"] != "a lovely evening" {
			t.Errorf("text = %v", payload["text"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"positive": 0.7,
			"neutral":  0.2,
			"negative": 0.1,
			"label":    "positive",
			"model":    "distilbert",
			"version":  "1.2.0",
		})
	}))
	defer server.Close()

	svc := NewSentimentService(server.URL, 5*time.Second)
	result, err := svc.Analyze(context.Background(), "a lovely evening")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Positive != 0.7 || result.Neutral != 0.2 || result.Negative != 0.1 {
		t.Errorf("probabilities = %+v", result)
	}
	if result.Label != "positive" || result.Model != "distilbert" || result.Version != "1.2.0" {
		t.Errorf("metadata = %+v", result)
	}
}

func TestAnalyzeShortFieldAliases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"pos":        0.1,
			"neu":        0.3,
			"neg":        0.6,
			"prediction": "negative",
		})
	}))
	defer server.Close()

	svc := NewSentimentService(server.URL, 5*time.Second)
	result, err := svc.Analyze(context.Background(), "rough day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Positive != 0.1 || result.Neutral != 0.3 || result.Negative != 0.6 {
		t.Errorf("probabilities = %+v", result)
	}
	if result.Label != "negative" {
		t.Errorf("label = %q, want prediction fallback", result.Label)
	}
	if result.Model != "unknown" {
		t.Errorf("model = %q, want unknown fallback", result.Model)
	}
}

func TestAnalyzeEmptyTextSkipsCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewSentimentService(server.URL, 5*time.Second)
	result, err := svc.Analyze(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if called {
		t.Errorf("empty text should not hit the service")
	}
}

func TestAnalyzeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewSentimentService(server.URL, 5*time.Second)
	if _, err := svc.Analyze(context.Background(), "hello"); err == nil {
		t.Errorf("expected error on 500 response")
	}
}

func TestAnalyzeUnreachable(t *testing.T) {
	svc := NewSentimentService("http://127.0.0.1:1", 500*time.Millisecond)
	if _, err := svc.Analyze(context.Background(), "hello"); err == nil {
		t.Errorf("expected error for unreachable service")
	}
}

func TestAdvise(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/advice" {
			t.Errorf("path = %q, want /advice", r.URL.Path)
		}
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["emoji"] != "😢" {
			t.Errorf("emoji = %v", payload["emoji"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"advice": "take a walk",
			"model":  "gpt",
			"source": "llm",
		})
	}))
	defer server.Close()

	svc := NewSentimentService(server.URL, 5*time.Second)
	result, err := svc.Advise(context.Background(), "feeling down", "😢")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Advice != "take a walk" || result.Model != "gpt" || result.Source != "llm" {
		t.Errorf("result = %+v", result)
	}
}

func TestAdviseEmptyTextSkipsCall(t *testing.T) {
	svc := NewSentimentService("http://127.0.0.1:1", time.Second)
	result, err := svc.Advise(context.Background(), "", "🙂")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
}
