// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_4_streak_keep/internal/config"
	"go_4_streak_keep/internal/handlers"
	"go_4_streak_keep/internal/middleware"
	"go_4_streak_keep/internal/model"
	"go_4_streak_keep/internal/repository"
	"go_4_streak_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env があれば環境変数に取り込む (無ければ無視)
	_ = godotenv.Load()

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := db.AutoMigrate(&model.DailyActivityRecord{}); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	activityRepo := repository.NewGormActivityRepository()
	notifier := service.NewNotifier()
	clock := service.NewSystemClock()

	activityService := service.NewActivityService(db, activityRepo, clock, notifier, &config.Cfg)

	rollover := service.NewRolloverScheduler(activityService, notifier, logger)
	rollover.Start()
	defer rollover.Stop()

	activityHandler := handlers.NewActivityHandler(activityService, logger)
	streakHandler := handlers.NewStreakHandler(activityService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)

	// 認証ミドルウェアの選択
	var authMiddleware func(http.Handler) http.Handler
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		authMiddleware = middleware.JWTAuthMiddleware(&config.Cfg)
	} else {
		slog.Info("Applying development authentication middleware (X-Tenant-ID header)")
		authMiddleware = middleware.DevTenantContextMiddleware
	}

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(chimiddleware.Timeout(60 * time.Second))

			r.Route("/activity", func(r chi.Router) {
				r.Post("/lessons", activityHandler.RecordLessons)
				r.Post("/cards", activityHandler.RecordCards)
				r.Post("/questions", activityHandler.RecordQuestions)
				r.Post("/exams", activityHandler.RecordExams)
				r.Post("/time", activityHandler.RecordTime)
				r.Get("/today", activityHandler.GetToday)
				r.Get("/totals", activityHandler.GetTotals)
				r.Delete("/", activityHandler.ClearActivity)
			})

			r.Get("/streak/status", streakHandler.GetStatus)
		})

		// SSEストリームは長寿命接続のためタイムアウトを適用しない
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/streak/status/stream", streakHandler.StreamStatus)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:        config.Cfg.Server.Port,
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		// SSEストリームがあるため WriteTimeout は設定しない
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
