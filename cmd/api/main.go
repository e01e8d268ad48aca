package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/kvizarena-api/internal/config"
	"github.com/yourusername/kvizarena-api/internal/handler"
	"github.com/yourusername/kvizarena-api/internal/middleware"
	pgRepo "github.com/yourusername/kvizarena-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/kvizarena-api/internal/repository/redis"
	"github.com/yourusername/kvizarena-api/internal/service"
	"github.com/yourusername/kvizarena-api/pkg/auth"
	"github.com/yourusername/kvizarena-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	quizRepo := pgRepo.NewQuizRepo(db)
	sessionRepo := pgRepo.NewGameSessionRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)
	achievementRepo := pgRepo.NewAchievementRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	quizService := service.NewQuizService(quizRepo, cacheRepo)
	rankingService := service.NewRankingService(resultRepo)
	achievementService := service.NewAchievementService(achievementRepo, resultRepo)
	resultService := service.NewResultService(resultRepo, quizRepo)
	gameService := service.NewGameService(
		quizService,
		sessionRepo,
		resultRepo,
		userRepo,
		rankingService,
		achievementService,
	)

	// Заполняем справочник достижений
	if err := achievementService.EnsureCatalog(); err != nil {
		log.Printf("Failed to ensure achievement catalog: %v", err)
		os.Exit(1)
	}

	// Инициализируем обработчики
	gameHandler := handler.NewGameHandler(gameService)
	quizHandler := handler.NewQuizHandler(quizService)
	resultHandler := handler.NewResultHandler(resultService, achievementService)

	// Middleware: проверка токенов коллаборатора идентичности + rate limiting
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	gameLimit := middleware.DefaultGameRateLimitConfig()
	startLimit := middleware.StrictStartRateLimitConfig()
	if cfg.RateLimit.MaxRequests > 0 {
		gameLimit.MaxRequests = cfg.RateLimit.MaxRequests
	}
	if cfg.RateLimit.WindowSec > 0 {
		gameLimit.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
	}
	limitOrNoop := func(c middleware.RateLimitConfig) gin.HandlerFunc {
		if !cfg.RateLimit.Enabled {
			return func(ctx *gin.Context) { ctx.Next() }
		}
		return rateLimiter.Limit(c)
	}

	// Настраиваем роутер
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		game := api.Group("/game")
		{
			game.GET("/quizzes", limitOrNoop(gameLimit), quizHandler.ListQuizzes)
			game.POST("/start/:quiz_id",
				authMiddleware.RequireAuth(),
				limitOrNoop(startLimit),
				middleware.ExtractUintParam("quiz_id", "quizID"),
				gameHandler.StartGame,
			)
			game.POST("/answer",
				authMiddleware.RequireAuth(),
				limitOrNoop(gameLimit),
				gameHandler.SubmitAnswer,
			)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("/:quiz_id/results",
				middleware.ExtractUintParam("quiz_id", "quizID"),
				resultHandler.GetQuizResults,
			)
			quizzes.GET("/:quiz_id/results/export",
				authMiddleware.RequireAuth(),
				middleware.ExtractUintParam("quiz_id", "quizID"),
				resultHandler.ExportQuizResults,
			)
		}

		me := api.Group("/users/me", authMiddleware.RequireAuth())
		{
			me.GET("/results", resultHandler.GetMyResults)
			me.GET("/results/:quiz_id",
				middleware.ExtractUintParam("quiz_id", "quizID"),
				resultHandler.GetMyQuizResult,
			)
			me.GET("/achievements", resultHandler.GetMyAchievements)
		}
	}

	// Настраиваем HTTP-сервер
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("Сервер запущен на порту %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Ошибка запуска сервера: %v", err)
			os.Exit(1)
		}
	}()

	// Корректное завершение по сигналу
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Получен сигнал завершения, останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Ошибка при остановке сервера: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Ошибка при закрытии Redis клиента: %v", err)
	}
	if sqlDB, err := database.GetSQLDB(db); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Ошибка при закрытии подключения к БД: %v", err)
		}
	}

	log.Println("Сервер остановлен")
}
