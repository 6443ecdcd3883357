package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hela/internal/assistant"
	"hela/internal/handlers"
	"hela/internal/integration"
	"hela/internal/logger"
	"hela/internal/middleware"
	"hela/internal/models"
	"hela/internal/prefs"
	"hela/internal/services"
	"hela/internal/store"
	"hela/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Client *stubChatClient
}

// stubChatClient stands in for the remote completion endpoint.
type stubChatClient struct {
	reply string
	err   error
}

func (c *stubChatClient) Complete(_ context.Context, _ []assistant.Message, _ assistant.CompletionOptions) (string, error) {
	return c.reply, c.err
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Preference{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	prefStore := prefs.NewStore(db)
	settingsService := services.NewSettingsService(prefStore)

	client := &stubChatClient{reply: "Here is a budgeting tip."}
	gateway := assistant.NewGateway(client)

	registry := handlers.NewRegistry(func() *handlers.Session {
		return &handlers.Session{
			Store: store.NewSeeded(),
			Integrations: integration.NewManager(
				integration.NewSimulatedProvider(time.Millisecond, time.Millisecond, time.Millisecond),
				integration.DefaultCatalog(),
			),
		}
	})

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, prefStore)
	budgetHandler := handlers.NewBudgetHandler(registry)
	goalHandler := handlers.NewGoalHandler(registry)
	reminderHandler := handlers.NewReminderHandler(registry)
	transactionHandler := handlers.NewTransactionHandler(registry, gateway)
	chatHandler := handlers.NewChatHandler(registry, gateway, time.Second)
	integrationHandler := handlers.NewIntegrationHandler(registry)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	learnHandler := handlers.NewLearnHandler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.Profile)
	protected.PUT("/profile/plan", authHandler.UpdatePlan)
	protected.POST("/profile/onboarding", authHandler.CompleteOnboarding)
	protected.POST("/logout", authHandler.Logout)

	protected.GET("/budget", budgetHandler.GetBudget)
	protected.PUT("/budget", budgetHandler.UpdateBudget)

	goals := protected.Group("/goals")
	goals.GET("", goalHandler.GetGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	reminders := protected.Group("/reminders")
	reminders.GET("", reminderHandler.GetReminders)
	reminders.POST("", reminderHandler.CreateReminder)
	reminders.PUT("/:id", reminderHandler.UpdateReminder)
	reminders.DELETE("/:id", reminderHandler.DeleteReminder)
	reminders.POST("/:id/complete", reminderHandler.CompleteReminder)
	reminders.POST("/:id/snooze", reminderHandler.SnoozeReminder)
	reminders.POST("/:id/reschedule", reminderHandler.RescheduleReminder)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.POST("/categorize", transactionHandler.Categorize)

	chat := protected.Group("/chat")
	chat.GET("", chatHandler.GetHistory)
	chat.POST("", chatHandler.SendMessage)
	chat.DELETE("", chatHandler.ClearChat)
	chat.GET("/insight", chatHandler.GetInsight)

	integrations := protected.Group("/integrations")
	integrations.GET("", integrationHandler.GetStatus)
	integrations.GET("/data", integrationHandler.GetUserData)
	integrations.POST("/:id/connect", integrationHandler.Connect)
	integrations.POST("/:id/disconnect", integrationHandler.Disconnect)
	integrations.POST("/sync", integrationHandler.Sync)

	settings := protected.Group("/settings")
	settings.GET("/theme", settingsHandler.GetTheme)
	settings.PUT("/theme", settingsHandler.UpdateTheme)
	settings.DELETE("/theme", settingsHandler.ResetTheme)
	settings.GET("/dashboard", settingsHandler.GetDashboard)
	settings.PUT("/dashboard", settingsHandler.UpdateDashboard)
	settings.POST("/dashboard/widgets/:widget/toggle", settingsHandler.ToggleWidget)

	learnGroup := protected.Group("/learn")
	learnGroup.GET("", learnHandler.GetModules)
	learnGroup.GET("/:id", learnHandler.GetModule)

	return &testApp{DB: db, Router: router, Client: client}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"name":"Test User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string), result["refresh_token"].(string)
}
