package integration

import (
	"net/http"
	"testing"
)

func TestDomainFlow_BudgetGoalsReminders(t *testing.T) {
	app := setupApp(t)
	access, _, _ := app.registerUser(t, "domain@test.com", "password123")

	// Seeded budget is present on first read.
	rec := app.request("GET", "/api/v1/budget", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["income"].(float64) != 75000 {
		t.Errorf("expected seeded income 75000, got %v", budget["income"])
	}

	// Budget update stores leftover verbatim.
	rec = app.request("PUT", "/api/v1/budget", `{"income":100000,"expenses":60000,"leftover":35000}`, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("budget update failed: %d %s", rec.Code, rec.Body.String())
	}
	budget = parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["leftover"].(float64) != 35000 {
		t.Errorf("expected leftover stored as supplied, got %v", budget["leftover"])
	}

	// Create a goal, then complete a seeded reminder.
	rec = app.request("POST", "/api/v1/goals",
		`{"name":"Boda Deposit","target_amount":20000,"current_amount":5000,"priority":"high"}`, access)
	if rec.Code != http.StatusCreated {
		t.Fatalf("goal create failed: %d %s", rec.Code, rec.Body.String())
	}
	goalID := parseJSON(t, rec)["goal"].(map[string]interface{})["id"].(string)

	rec = app.request("PUT", "/api/v1/goals/"+goalID, `{"current_amount":10000}`, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("goal update failed: %d", rec.Code)
	}
	goal := parseJSON(t, rec)["goal"].(map[string]interface{})
	if goal["progress"].(float64) != 50 {
		t.Errorf("expected 50%% progress, got %v", goal["progress"])
	}

	rec = app.request("GET", "/api/v1/reminders", "", access)
	reminders := parseJSON(t, rec)["reminders"].([]interface{})
	if len(reminders) != 3 {
		t.Fatalf("expected 3 seeded reminders, got %d", len(reminders))
	}
	reminderID := reminders[0].(map[string]interface{})["id"].(string)

	rec = app.request("POST", "/api/v1/reminders/"+reminderID+"/complete", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("reminder complete failed: %d %s", rec.Code, rec.Body.String())
	}

	// Unknown reminder id surfaces a typed error.
	rec = app.request("POST", "/api/v1/reminders/no-such-id/complete", "", access)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	errBody := parseJSON(t, rec)["error"].(map[string]interface{})
	if errBody["code"] != "REMINDER_NOT_FOUND" {
		t.Errorf("expected REMINDER_NOT_FOUND, got %v", errBody["code"])
	}
}

func TestDomainFlow_TransactionsPaginatedNewestFirst(t *testing.T) {
	app := setupApp(t)
	access, _, _ := app.registerUser(t, "tx@test.com", "password123")

	rec := app.request("POST", "/api/v1/transactions",
		`{"type":"expense","amount":1200,"description":"Matatu fare","category":"Transport"}`, access)
	if rec.Code != http.StatusCreated {
		t.Fatalf("transaction create failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/transactions?page=1&page_size=2", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("transaction list failed: %d", rec.Code)
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected page of 2, got %d", len(data))
	}
	// 3 seeded + 1 created
	if result["total_items"].(float64) != 4 {
		t.Errorf("expected 4 total items, got %v", result["total_items"])
	}
	newest := data[0].(map[string]interface{})
	if newest["description"] != "Matatu fare" {
		t.Errorf("expected newest transaction first, got %v", newest["description"])
	}
}

func TestDomainFlow_ChatAndIntegrations(t *testing.T) {
	app := setupApp(t)
	access, _, _ := app.registerUser(t, "chat@test.com", "password123")

	// Chat greeting is seeded.
	rec := app.request("GET", "/api/v1/chat", "", access)
	messages := parseJSON(t, rec)["messages"].([]interface{})
	if len(messages) != 1 {
		t.Fatalf("expected seeded greeting, got %d messages", len(messages))
	}

	rec = app.request("POST", "/api/v1/chat", `{"content":"How do I save more?"}`, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat failed: %d %s", rec.Code, rec.Body.String())
	}
	reply := parseJSON(t, rec)["message"].(map[string]interface{})
	if reply["content"] != "Here is a budgeting tip." {
		t.Errorf("unexpected assistant reply: %v", reply["content"])
	}

	// Connect a service, then verify it lands in the connected list.
	rec = app.request("POST", "/api/v1/integrations/mpesa/connect", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("connect failed: %d %s", rec.Code, rec.Body.String())
	}
	status := parseJSON(t, rec)["status"].(map[string]interface{})
	connected := status["connected_services"].([]interface{})
	if len(connected) != 1 {
		t.Fatalf("expected 1 connected service, got %d", len(connected))
	}

	// Connecting an unknown service is a typed 404.
	rec = app.request("POST", "/api/v1/integrations/paypal/connect", "", access)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	errBody := parseJSON(t, rec)["error"].(map[string]interface{})
	if errBody["code"] != "SERVICE_NOT_FOUND" {
		t.Errorf("expected SERVICE_NOT_FOUND, got %v", errBody["code"])
	}
}

func TestDomainFlow_SettingsPersistAcrossSessions(t *testing.T) {
	app := setupApp(t)
	access, _, _ := app.registerUser(t, "settings@test.com", "password123")

	body := `{"mode":"dark","primary_color":"#059669","accent_color":"#2563eb","font_family":"Inter","font_size":"large"}`
	rec := app.request("PUT", "/api/v1/settings/theme", body, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("theme update failed: %d %s", rec.Code, rec.Body.String())
	}

	// A fresh login still sees the persisted theme.
	newAccess, _ := app.loginUser(t, "settings@test.com", "password123")
	rec = app.request("GET", "/api/v1/settings/theme", "", newAccess)
	theme := parseJSON(t, rec)["theme"].(map[string]interface{})
	if theme["mode"] != "dark" || theme["font_size"] != "large" {
		t.Errorf("expected persisted theme, got %+v", theme)
	}

	// Reset restores defaults.
	rec = app.request("DELETE", "/api/v1/settings/theme", "", newAccess)
	theme = parseJSON(t, rec)["theme"].(map[string]interface{})
	if theme["mode"] != "light" {
		t.Errorf("expected default mode after reset, got %v", theme["mode"])
	}
}
