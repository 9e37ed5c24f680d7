package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func candidateResponse(text string) string {
	return `{"candidates": [{"content": {"role": "model", "parts": [{"text": ` + strconvQuote(text) + `}]}}]}`
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestCompleteExtractsFirstCandidateText(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/v1beta/models/test-model:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(candidateResponse("generated workout")))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", time.Second)

	got, err := client.Complete(context.Background(), "make me a workout")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "generated workout" {
		t.Errorf("expected %q, got %q", "generated workout", got)
	}

	if len(captured.Contents) != 1 {
		t.Fatalf("expected 1 content entry, got %d", len(captured.Contents))
	}
	if captured.Contents[0].Role != RoleUser {
		t.Errorf("expected role %q, got %q", RoleUser, captured.Contents[0].Role)
	}
	if captured.Contents[0].Parts[0].Text != "make me a workout" {
		t.Errorf("prompt not forwarded: %+v", captured.Contents[0])
	}
}

func TestCompleteWithHistorySendsTurnsThenFinalPrompt(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(candidateResponse("revised workout")))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", time.Second)
	turns := []Turn{
		{Role: RoleModel, Text: "first workout"},
		{Role: RoleUser, Text: "more cardio"},
	}

	got, err := client.CompleteWithHistory(context.Background(), turns, "final change")
	if err != nil {
		t.Fatalf("CompleteWithHistory returned error: %v", err)
	}
	if got != "revised workout" {
		t.Errorf("expected %q, got %q", "revised workout", got)
	}

	if len(captured.Contents) != 3 {
		t.Fatalf("expected 3 content entries, got %d", len(captured.Contents))
	}
	expectedRoles := []string{RoleModel, RoleUser, RoleUser}
	expectedTexts := []string{"first workout", "more cardio", "final change"}
	for i := range captured.Contents {
		if captured.Contents[i].Role != expectedRoles[i] {
			t.Errorf("content %d: expected role %q, got %q", i, expectedRoles[i], captured.Contents[i].Role)
		}
		if captured.Contents[i].Parts[0].Text != expectedTexts[i] {
			t.Errorf("content %d: expected text %q, got %q", i, expectedTexts[i], captured.Contents[i].Parts[0].Text)
		}
	}
}

func TestCompleteNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", time.Second)

	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": []}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", time.Second)

	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", time.Second)

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for non-success status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", "key", "", 0)
	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", client.baseURL)
	}
	if client.model != DefaultModel {
		t.Errorf("expected default model, got %q", client.model)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", client.httpClient.Timeout)
	}
}
