// cmd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"go_study_sheet/internal/config"
	"go_study_sheet/internal/handlers"
	"go_study_sheet/internal/imagehost"
	"go_study_sheet/internal/metrics"
	"go_study_sheet/internal/middleware"
	"go_study_sheet/internal/model"
	"go_study_sheet/internal/repository"
	"go_study_sheet/internal/service"
	"go_study_sheet/internal/session"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configPath := os.Getenv("APP_CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	ctx := context.Background()
	healthChecks := map[string]handlers.HealthCheck{}
	m := metrics.New(prometheus.DefaultRegisterer)

	// 1. レコードストア
	recordRepo, closeStore, err := newRecordRepository(ctx, logger, healthChecks)
	if err != nil {
		slog.Error("Error initializing record store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()
	recordRepo = repository.NewInstrumentedRecordRepository(recordRepo, m)

	// 2. セッションストア
	sessions, err := newSessionStore(healthChecks)
	if err != nil {
		slog.Error("Error initializing session store", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	uploader := imagehost.NewUploader(config.Cfg.ImageHost)
	recordService := service.NewRecordService(recordRepo, uploader, m)
	studyService := service.NewStudyService(recordService, sessions, service.NewSelector(nil), m, service.StudyOptions{
		DefaultMode:          model.StudyMode(config.Cfg.App.DefaultMode),
		ListCaption:          config.Cfg.App.ListCaption,
		VerifyRowBeforeWrite: config.Cfg.Store.VerifyRowBeforeWrite,
	})

	studyHandler := handlers.NewStudyHandler(studyService, logger)
	recordHandler := handlers.NewRecordHandler(studyService, logger)
	healthHandler := handlers.NewHealthHandler(healthChecks, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(config.Cfg.Session.CookieName, config.Cfg.Session.TTL))

		// 学習 (ホーム)
		r.Route("/study", func(r chi.Router) {
			r.Get("/", studyHandler.GetStudy)
			r.Post("/draw", studyHandler.PostDraw)
			r.Post("/reveal", studyHandler.PostReveal)
			r.Post("/mark", studyHandler.PostMark)
			r.Post("/reload", studyHandler.PostReload)
		})

		// 追加・一覧
		r.Route("/records", func(r chi.Router) {
			r.Get("/", recordHandler.GetRecords)
			r.Post("/", recordHandler.PostRecord)
		})
	})

	r.Get("/health", healthHandler.GetHealth)
	r.Handle("/metrics", promhttp.Handler())

	// 5. Start Server
	server := &http.Server{
		Addr:              config.Cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		// 画像アップロードと Sheets API の往復を待つ
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定に基づいて slog ロガーを作ります。APP_ENV=dev なら tint
func newLogger(tempLogger *slog.Logger) *slog.Logger {
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
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// newRecordRepository は store.backend に応じたリポジトリと後始末関数を返します
func newRecordRepository(ctx context.Context, logger *slog.Logger, checks map[string]handlers.HealthCheck) (repository.RecordRepository, func(), error) {
	switch config.Cfg.Store.Backend {
	case config.StoreBackendSheets:
		svc, err := repository.NewSheetsService(ctx, config.Cfg.Sheets)
		if err != nil {
			// 認証情報の不備では落とさず、読み込みエラーとして画面に出す
			logger.Warn("Google Sheets unavailable, records will fail to load", slog.Any("error", err))
			checks["store"] = func(context.Context) error { return err }
			return repository.NewUnavailableRecordRepository(err), func() {}, nil
		}
		logger.Info("Using Google Sheets record store",
			slog.String("spreadsheet_id", config.Cfg.Sheets.SpreadsheetID),
			slog.String("sheet", config.Cfg.Sheets.SheetName),
		)
		values := repository.NewGoogleSheetValues(svc, config.Cfg.Sheets.SpreadsheetID)
		return repository.NewSheetRecordRepository(values, config.Cfg.Sheets.SheetName), func() {}, nil

	case config.StoreBackendDatabase:
		db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		checks["store"] = func(ctx context.Context) error { return sqlDB.PingContext(ctx) }
		closeFn := func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Error closing database connection", slog.Any("error", err))
			} else {
				slog.Info("Database connection closed.")
			}
		}
		return repository.NewGormRecordRepository(db), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", config.Cfg.Store.Backend)
	}
}

func newSessionStore(checks map[string]handlers.HealthCheck) (session.Store, error) {
	store, err := session.NewStore(config.Cfg.Session)
	if err != nil {
		return nil, err
	}
	if p, ok := store.(session.Pinger); ok {
		checks["sessions"] = p.Ping
		slog.Info("Using redis session store", slog.String("addr", config.Cfg.Session.RedisAddr))
	}
	return store, nil
}
