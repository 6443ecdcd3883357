package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hela/internal/assistant"
)

// scriptedClient returns a fixed reply or error for every completion.
type scriptedClient struct {
	reply string
	err   error
}

func (c *scriptedClient) Complete(_ context.Context, _ []assistant.Message, _ assistant.CompletionOptions) (string, error) {
	return c.reply, c.err
}

func setupChatRouter(registry *Registry, client assistant.ChatClient) *gin.Engine {
	handler := NewChatHandler(registry, assistant.NewGateway(client), time.Second)
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.GET("/chat", handler.GetHistory)
	auth.POST("/chat", handler.SendMessage)
	auth.DELETE("/chat", handler.ClearChat)
	auth.GET("/chat/insight", handler.GetInsight)
	return r
}

func TestChatHandler_SendMessage(t *testing.T) {
	t.Run("appends both sides of the exchange", func(t *testing.T) {
		registry := newTestRegistry()
		r := setupChatRouter(registry, &scriptedClient{reply: "Start with the 50/30/20 rule."})

		rec := doRequest(r, http.MethodPost, "/chat", `{"content":"How should I budget?"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		msg := parseJSON(t, rec)["message"].(map[string]interface{})
		if msg["content"] != "Start with the 50/30/20 rule." {
			t.Errorf("unexpected reply: %v", msg["content"])
		}

		// greeting + user message + assistant reply
		history := registry.Session("user-1").Store.ChatHistory()
		if len(history) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(history))
		}
	})

	t.Run("provider failure still returns a reply", func(t *testing.T) {
		registry := newTestRegistry()
		r := setupChatRouter(registry, &scriptedClient{err: &assistant.APIError{StatusCode: 500, Message: "boom"}})

		rec := doRequest(r, http.MethodPost, "/chat", `{"content":"Help me with my budget"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		msg := parseJSON(t, rec)["message"].(map[string]interface{})
		if msg["content"] == "" {
			t.Error("expected a fallback reply, got empty content")
		}
	})

	t.Run("returns 400 on empty content", func(t *testing.T) {
		r := setupChatRouter(newTestRegistry(), &scriptedClient{})

		rec := doRequest(r, http.MethodPost, "/chat", `{"content":""}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestChatHandler_ClearChat(t *testing.T) {
	t.Run("resets to the greeting", func(t *testing.T) {
		registry := newTestRegistry()
		r := setupChatRouter(registry, &scriptedClient{reply: "ok"})

		doRequest(r, http.MethodPost, "/chat", `{"content":"hello"}`)
		rec := doRequest(r, http.MethodDelete, "/chat", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		history := registry.Session("user-1").Store.ChatHistory()
		if len(history) != 1 {
			t.Fatalf("expected only the greeting, got %d messages", len(history))
		}
	})
}

func TestChatHandler_GetInsight(t *testing.T) {
	t.Run("always returns an insight", func(t *testing.T) {
		r := setupChatRouter(newTestRegistry(), &scriptedClient{err: &assistant.APIError{StatusCode: 429, Message: "quota"}})

		rec := doRequest(r, http.MethodGet, "/chat/insight", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["insight"] == "" {
			t.Error("expected non-empty insight")
		}
	})
}
