package main

import (
	"fmt"
	"net/http"
	"os"

	"hela/internal/assistant"
	"hela/internal/config"
	"hela/internal/database"
	"hela/internal/handlers"
	"hela/internal/integration"
	"hela/internal/logger"
	"hela/internal/middleware"
	"hela/internal/prefs"
	"hela/internal/services"
	"hela/internal/store"
	"hela/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager and apply migrations
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	prefStore := prefs.NewStore(db)
	settingsService := services.NewSettingsService(prefStore)

	// Assistant gateway over the configured chat-completion endpoint
	client := assistant.NewOpenAIClient(
		appConfig.OpenAIBaseURL,
		appConfig.OpenAIAPIKey,
		appConfig.OpenAIModel,
		&http.Client{Timeout: appConfig.ChatTimeout},
	)
	gateway := assistant.NewGateway(client)

	// Per-user domain state: each user gets a seeded store plus an
	// integration state machine over the simulated provider.
	registry := handlers.NewRegistry(func() *handlers.Session {
		return &handlers.Session{
			Store: store.NewSeeded(),
			Integrations: integration.NewManager(
				integration.NewSimulatedProvider(
					appConfig.ConnectDelay,
					appConfig.DisconnectDelay,
					appConfig.SyncDelay,
				),
				integration.DefaultCatalog(),
			),
		}
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, prefStore)
	budgetHandler := handlers.NewBudgetHandler(registry)
	goalHandler := handlers.NewGoalHandler(registry)
	reminderHandler := handlers.NewReminderHandler(registry)
	transactionHandler := handlers.NewTransactionHandler(registry, gateway)
	chatHandler := handlers.NewChatHandler(registry, gateway, appConfig.ChatTimeout)
	integrationHandler := handlers.NewIntegrationHandler(registry)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	learnHandler := handlers.NewLearnHandler()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.Profile)
	protected.PUT("/profile/plan", authHandler.UpdatePlan)
	protected.POST("/profile/onboarding", authHandler.CompleteOnboarding)
	protected.POST("/logout", authHandler.Logout)

	// Budget routes
	protected.GET("/budget", budgetHandler.GetBudget)
	protected.PUT("/budget", budgetHandler.UpdateBudget)

	// Goal routes
	goals := protected.Group("/goals")
	goals.GET("", goalHandler.GetGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Reminder routes
	reminders := protected.Group("/reminders")
	reminders.GET("", reminderHandler.GetReminders)
	reminders.POST("", reminderHandler.CreateReminder)
	reminders.PUT("/:id", reminderHandler.UpdateReminder)
	reminders.DELETE("/:id", reminderHandler.DeleteReminder)
	reminders.POST("/:id/complete", reminderHandler.CompleteReminder)
	reminders.POST("/:id/snooze", reminderHandler.SnoozeReminder)
	reminders.POST("/:id/reschedule", reminderHandler.RescheduleReminder)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.POST("/categorize", transactionHandler.Categorize)

	// Chat routes
	chat := protected.Group("/chat")
	chat.GET("", chatHandler.GetHistory)
	chat.POST("", chatHandler.SendMessage)
	chat.DELETE("", chatHandler.ClearChat)
	chat.GET("/insight", chatHandler.GetInsight)

	// Integration routes
	integrations := protected.Group("/integrations")
	integrations.GET("", integrationHandler.GetStatus)
	integrations.GET("/data", integrationHandler.GetUserData)
	integrations.POST("/:id/connect", integrationHandler.Connect)
	integrations.POST("/:id/disconnect", integrationHandler.Disconnect)
	integrations.POST("/sync", integrationHandler.Sync)

	// Settings routes
	settings := protected.Group("/settings")
	settings.GET("/theme", settingsHandler.GetTheme)
	settings.PUT("/theme", settingsHandler.UpdateTheme)
	settings.DELETE("/theme", settingsHandler.ResetTheme)
	settings.GET("/dashboard", settingsHandler.GetDashboard)
	settings.PUT("/dashboard", settingsHandler.UpdateDashboard)
	settings.POST("/dashboard/widgets/:widget/toggle", settingsHandler.ToggleWidget)

	// Learn routes
	learnGroup := protected.Group("/learn")
	learnGroup.GET("", learnHandler.GetModules)
	learnGroup.GET("/:id", learnHandler.GetModule)

	log.Infof("Starting Hela backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
