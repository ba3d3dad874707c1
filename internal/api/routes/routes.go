package routes

import (
	"net/http"
	"time"

	"career-advisor/internal/advisor"
	"career-advisor/internal/api/handlers"
	"career-advisor/internal/api/middleware"
	"career-advisor/internal/config"
	"career-advisor/internal/llm"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager, adv *advisor.Advisor) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Server.MaxBodyBytes))
	e.Use(middleware.RateLimit(cfg.Advisor.RateLimit, cfg.Advisor.RateBurst))
	// Advice endpoints wait on the hosted model; give them a longer deadline
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.Advisor.RequestTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		analyze := v1.Group("/analyze")
		{
			analyze.POST("/skills", handlers.AnalyzeSkillsHandler(adv))
		}

		match := v1.Group("/match")
		{
			match.POST("/careers", handlers.MatchCareersHandler(adv))
		}

		v1.POST("/learning-path", handlers.LearningPathHandler(adv))

		research := v1.Group("/research")
		{
			research.GET("/industry/:industry", handlers.ResearchIndustryHandler(adv))
		}

		advice := v1.Group("/advice")
		{
			advice.POST("/comprehensive", handlers.ComprehensiveAdviceHandler(adv))
		}
	}

	// Form UI routes
	e.GET("/ui", handlers.UIFormHandler())
	e.POST("/ui", handlers.UIAdviceHandler(adv))

	// Root route with endpoint listing
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service": "Career Advisor",
			"version": "1.0.0",
			"status":  "running",
			"time":    time.Now().Format(time.RFC3339),
			"endpoints": map[string]string{
				"skills_analysis":      "/api/v1/analyze/skills",
				"career_matches":       "/api/v1/match/careers",
				"learning_path":        "/api/v1/learning-path",
				"industry_research":    "/api/v1/research/industry/:industry",
				"comprehensive_advice": "/api/v1/advice/comprehensive",
				"form_ui":              "/ui",
			},
		})
	})
}
