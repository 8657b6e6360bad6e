package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sereneapp/serene-api/internal/config"
	"github.com/sereneapp/serene-api/internal/handlers"
	"github.com/sereneapp/serene-api/internal/logger"
	"github.com/sereneapp/serene-api/internal/middleware"
	"github.com/sereneapp/serene-api/internal/repository"
	"github.com/sereneapp/serene-api/internal/service"
	"github.com/sereneapp/serene-api/pkg/supabase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))
	log := logger.Default()

	log.Info("starting serene API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	moodRepo := repository.NewMoodEntryRepository(supabaseClient)
	journalRepo := repository.NewJournalEntryRepository(supabaseClient)
	wellnessRepo := repository.NewWellnessLogRepository(supabaseClient)
	exerciseRepo := repository.NewExerciseCompletionRepository(supabaseClient)

	// Initialize services. The notifier links the write paths to the
	// dashboard recompute loop.
	notifier := service.NewInProcessNotifier()
	moodService := service.NewMoodService(moodRepo, notifier)
	journalService := service.NewJournalService(journalRepo, notifier)
	wellnessService := service.NewWellnessService(wellnessRepo, exerciseRepo, notifier)
	analyzer := service.NewAnalyzerService(cfg.Analyzer.URL, cfg.Analyzer.APIKey, cfg.Analyzer.Model)
	dashboardService := service.NewDashboardService(moodService, journalService, wellnessService, notifier)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	journalHandler := handlers.NewJournalHandler(journalService, analyzer)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Mood routes
			protected.GET("/mood", moodHandler.GetOverview)
			protected.POST("/mood", moodHandler.SaveMood)

			// Journal routes
			protected.GET("/journal", journalHandler.GetOverview)
			protected.POST("/journal/entries", journalHandler.CreateEntry)
			protected.POST("/journal/analyze", middleware.RateLimitAnalyze(), journalHandler.Analyze)

			// Wellness routes
			protected.GET("/wellness/summary", wellnessHandler.GetWeeklySummary)
			protected.POST("/wellness/logs", wellnessHandler.LogWellness)
			protected.GET("/exercises/completions", wellnessHandler.GetCompletions)
			protected.POST("/exercises/completions", wellnessHandler.CompleteExercise)

			// Dashboard routes
			protected.GET("/dashboard", dashboardHandler.GetSnapshot)
			protected.POST("/dashboard/refresh", dashboardHandler.Refresh)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
