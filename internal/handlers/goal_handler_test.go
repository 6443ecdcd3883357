package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hela/internal/integration"
	"hela/internal/store"
	"hela/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func newTestRegistry() *Registry {
	return NewRegistry(func() *Session {
		return &Session{
			Store: store.New(),
			Integrations: integration.NewManager(
				integration.NewSimulatedProvider(time.Millisecond, time.Millisecond, time.Millisecond),
				integration.DefaultCatalog(),
			),
		}
	})
}

func setupGoalRouter(registry *Registry) *gin.Engine {
	handler := NewGoalHandler(registry)
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.GET("/goals", handler.GetGoals)
	auth.POST("/goals", handler.CreateGoal)
	auth.PUT("/goals/:id", handler.UpdateGoal)
	auth.DELETE("/goals/:id", handler.DeleteGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		r := setupGoalRouter(newTestRegistry())

		rec := doRequest(r, http.MethodPost, "/goals",
			`{"name":"Emergency Fund","target_amount":150000,"current_amount":45000,"priority":"high"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["id"] == "" {
			t.Error("expected goal to receive an id")
		}
		if goal["progress"].(float64) != 30 {
			t.Errorf("expected 30%% progress, got %v", goal["progress"])
		}
	})

	t.Run("returns 400 on bad priority", func(t *testing.T) {
		r := setupGoalRouter(newTestRegistry())

		rec := doRequest(r, http.MethodPost, "/goals",
			`{"name":"Fund","target_amount":1000,"priority":"urgent"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_UpdateGoal(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		registry := newTestRegistry()
		r := setupGoalRouter(registry)

		rec := doRequest(r, http.MethodPost, "/goals",
			`{"name":"Laptop","target_amount":80000,"current_amount":25000,"priority":"medium"}`)
		created := parseJSON(t, rec)["goal"].(map[string]interface{})
		id := created["id"].(string)

		rec = doRequest(r, http.MethodPut, "/goals/"+id, `{"current_amount":40000}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["current_amount"].(float64) != 40000 {
			t.Errorf("expected updated amount, got %v", goal["current_amount"])
		}
		if goal["name"].(string) != "Laptop" {
			t.Errorf("expected name unchanged, got %v", goal["name"])
		}
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		r := setupGoalRouter(newTestRegistry())

		rec := doRequest(r, http.MethodPut, "/goals/no-such-goal", `{"current_amount":1}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}

		errBody := parseJSON(t, rec)["error"].(map[string]interface{})
		if errBody["code"] != "GOAL_NOT_FOUND" {
			t.Errorf("expected GOAL_NOT_FOUND, got %v", errBody["code"])
		}
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	t.Run("removes the goal", func(t *testing.T) {
		registry := newTestRegistry()
		r := setupGoalRouter(registry)

		rec := doRequest(r, http.MethodPost, "/goals",
			`{"name":"Trip","target_amount":50000,"priority":"low"}`)
		id := parseJSON(t, rec)["goal"].(map[string]interface{})["id"].(string)

		rec = doRequest(r, http.MethodDelete, "/goals/"+id, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		if len(registry.Session("user-1").Store.Goals()) != 0 {
			t.Error("expected goal removed from the store")
		}
	})

	t.Run("sessions_are_isolated_per_user", func(t *testing.T) {
		registry := newTestRegistry()
		r := setupGoalRouter(registry)

		doRequest(r, http.MethodPost, "/goals",
			`{"name":"Fund","target_amount":1000,"priority":"low"}`)

		if len(registry.Session("user-2").Store.Goals()) != 0 {
			t.Error("expected other users to start with empty state")
		}
	})
}
