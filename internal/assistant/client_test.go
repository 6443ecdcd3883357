package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOpenAIClientComplete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody completionRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Start with the 50/30/20 rule."}}]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(server.URL+"/", "test-key", "gpt-4o-mini", server.Client())
		reply, err := client.Complete(context.Background(),
			[]Message{{Role: "user", Content: "Budget tips?"}},
			CompletionOptions{MaxTokens: 500, Temperature: 0.7})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reply != "Start with the 50/30/20 rule." {
			t.Errorf("unexpected reply: %q", reply)
		}
		if gotPath != "/chat/completions" {
			t.Errorf("unexpected path: %q", gotPath)
		}
		if gotAuth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", gotAuth)
		}
		if gotBody.Model != "gpt-4o-mini" || gotBody.MaxTokens != 500 {
			t.Errorf("unexpected request body: %+v", gotBody)
		}
	})

	t.Run("rate_limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota"}}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(server.URL, "test-key", "gpt-4o-mini", server.Client())
		_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, CompletionOptions{})

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("expected status 429, got %d", apiErr.StatusCode)
		}
		if apiErr.Message != "You exceeded your current quota" {
			t.Errorf("expected API error message passed through, got %q", apiErr.Message)
		}
	})

	t.Run("error_without_body_uses_status_text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewOpenAIClient(server.URL, "test-key", "gpt-4o-mini", server.Client())
		_, err := client.Complete(context.Background(), nil, CompletionOptions{})

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Message != http.StatusText(http.StatusServiceUnavailable) {
			t.Errorf("unexpected message: %q", apiErr.Message)
		}
	})

	t.Run("empty_choices_is_empty_success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(server.URL, "test-key", "gpt-4o-mini", server.Client())
		reply, err := client.Complete(context.Background(), nil, CompletionOptions{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reply != "" {
			t.Errorf("expected empty reply, got %q", reply)
		}
	})

	t.Run("context_cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		client := NewOpenAIClient(server.URL, "test-key", "gpt-4o-mini", server.Client())
		_, err := client.Complete(ctx, nil, CompletionOptions{})
		if err == nil {
			t.Fatal("expected error from cancelled context")
		}
	})
}
