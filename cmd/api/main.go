// @title QuizForge API
// @version 1.0
// @description AI quiz generation backend with Wikipedia enrichment.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizforge/internal/adapter"
	"quizforge/internal/adapter/llm"
	"quizforge/internal/adapter/wiki"
	"quizforge/internal/cache"
	"quizforge/internal/config"
	"quizforge/internal/database"
	"quizforge/internal/handler"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/repository"
	"quizforge/internal/service"

	_ "quizforge/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its status and latency.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// A missing Groq key is tolerated here; generation requests fail with an
	// upstream error until one is configured.
	completionClient, err := llm.NewGroqClient(cfg.Groq)
	if err != nil {
		appLogger.Fatal("Failed to create completion client", zap.Error(err))
	}
	if !completionClient.Configured() {
		appLogger.Warn("GROQ_API_KEY is not set; quiz generation will be unavailable")
	}

	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	wikiClient := wiki.NewClient(cfg.Wikipedia)

	// Repositories
	quizRepository := repository.NewQuizRepository(db)
	submissionRepository := repository.NewSubmissionRepository(db)
	userRepository := repository.NewUserRepository(db)
	chatRepository := repository.NewChatRepository(db)

	// Services
	quizCacheService := service.NewQuizCacheService(cacheAdapter, cfg.CacheTTLs.QuizSnapshot)
	contextGatherer := service.NewContextGatherer(wikiClient)
	quizService := service.NewQuizService(completionClient, contextGatherer, quizRepository, submissionRepository, quizCacheService)
	wikipediaService := service.NewWikipediaService(wikiClient)
	chatService := service.NewChatService(completionClient, chatRepository)
	userService := service.NewUserService(userRepository, quizRepository, submissionRepository)
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Handlers
	quizHandler := handler.NewQuizHandler(quizService)
	wikipediaHandler := handler.NewWikipediaHandler(wikipediaService)
	chatHandler := handler.NewChatHandler(chatService)
	healthHandler := handler.NewHealthHandler(cfg, db, cacheAdapter, completionClient)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Health and model discovery
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Get("/health/database", healthHandler.DatabaseHealth)
	apiGroup.Get("/models", healthHandler.Models)

	// Quiz routes
	apiGroup.Post("/quiz/generate", quizHandler.Generate)
	apiGroup.Post("/quiz/submit", middleware.OptionalAuth(authService), quizHandler.Submit)
	apiGroup.Get("/quiz/results", quizHandler.GetResults)
	apiGroup.Get("/quiz/history", quizHandler.GetHistory)
	apiGroup.Get("/quiz/history/:id", quizHandler.GetQuizDetail)

	// Wikipedia routes
	wikiGroup := apiGroup.Group("/wikipedia")
	wikiGroup.Get("/search", wikipediaHandler.Search)
	wikiGroup.Get("/article/:title", wikipediaHandler.GetArticle)
	wikiGroup.Get("/articles", wikipediaHandler.GetArticles)
	wikiGroup.Post("/fact-check", wikipediaHandler.FactCheck)

	// Chat routes
	chatGroup := apiGroup.Group("/chat", middleware.OptionalAuth(authService))
	chatGroup.Post("/", chatHandler.Chat)
	chatGroup.Post("/conversation", chatHandler.Conversation)

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// User routes
	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetProfile)
	userGroup.Get("/me/submissions", userHandler.GetSubmissions)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
