// Command api runs the association content API server.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"elbouchra-cms/internal/common/pagination"
	"elbouchra-cms/internal/content"
	handler "elbouchra-cms/internal/handler/http"
	articlehandler "elbouchra-cms/internal/handler/http/article"
	"elbouchra-cms/internal/handler/http/auth"
	"elbouchra-cms/internal/handler/http/requestid"
	"elbouchra-cms/internal/handler/http/upload"
	"elbouchra-cms/internal/i18n"
	"elbouchra-cms/internal/infra/adapter/persistence/postgres"
	"elbouchra-cms/internal/infra/db"
	"elbouchra-cms/internal/infra/storage"
	"elbouchra-cms/internal/observability/logging"
	"elbouchra-cms/internal/observability/tracing"
	serviceauth "elbouchra-cms/internal/service/auth"
	artUC "elbouchra-cms/internal/usecase/article"
	"elbouchra-cms/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.Setup()
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown", slog.Any("error", err))
		}
	}()

	provider, err := auth.NewEnvProvider()
	if err != nil {
		return fmt.Errorf("admin credentials: %w", err)
	}
	jwtSecret, err := auth.LoadJWTSecret()
	if err != nil {
		return fmt.Errorf("jwt secret: %w", err)
	}

	database := db.Open()
	defer database.Close()

	if err := db.MigrateUp(database); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	messages, err := i18n.NewStore()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	uploader, mediaDir, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	svc := &artUC.Service{
		Repo:      postgres.NewArticleRepo(database),
		Sanitizer: content.NewSanitizer(),
		Messages:  messages,
	}

	mux := setupRoutes(ctx, database, svc, uploader, mediaDir, jwtSecret, serviceauth.NewService(provider))
	srv := &http.Server{
		Addr:              config.GetEnvString("HTTP_ADDR", ":8080"),
		Handler:           applyMiddleware(ctx, mux, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			config.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
		defer cancel()

		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// initStorage selects the media storage backend from STORAGE_BACKEND.
// The local backend also serves uploaded files, so its directory is returned.
func initStorage(ctx context.Context) (storage.Uploader, string, error) {
	baseURL := config.GetEnvString("MEDIA_BASE_URL", "/media")

	switch backend := config.GetEnvString("STORAGE_BACKEND", "local"); backend {
	case "local":
		dir := config.GetEnvString("MEDIA_DIR", "./media")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("create media dir: %w", err)
		}
		uploader, err := storage.NewLocalUploader(dir, baseURL)
		if err != nil {
			return nil, "", err
		}
		return uploader, dir, nil
	case "s3":
		bucket := os.Getenv("S3_BUCKET")
		if bucket == "" {
			return nil, "", fmt.Errorf("S3_BUCKET is not set")
		}
		uploader, err := storage.NewS3Uploader(ctx, bucket, os.Getenv("AWS_REGION"), baseURL)
		if err != nil {
			return nil, "", err
		}
		return uploader, "", nil
	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", backend)
	}
}

func setupRoutes(
	ctx context.Context,
	database *sql.DB,
	svc *artUC.Service,
	uploader storage.Uploader,
	mediaDir string,
	jwtSecret []byte,
	authService *serviceauth.Service,
) *http.ServeMux {
	mux := http.NewServeMux()

	health := handler.NewHealthHandler(database)
	mux.Handle("GET /health", health)
	mux.HandleFunc("GET /ready", health.ReadyHandler)
	mux.HandleFunc("GET /live", handler.LiveHandler)
	mux.Handle("GET /metrics", handler.MetricsHandler())

	// credential guessing gets its own, much stricter limit
	authLimiter := handler.NewRateLimiter(ctx,
		config.GetEnvInt("AUTH_RATE_LIMIT", 5),
		config.GetEnvDuration("AUTH_RATE_LIMIT_WINDOW", time.Minute))
	auth.Register(mux, authLimiter.Middleware(auth.NewTokenHandler(authService, jwtSecret)))
	articlehandler.NewHandler(svc, pagination.LoadFromEnv()).Register(mux, jwtSecret)
	upload.NewHandler(uploader).Register(mux, jwtSecret)

	if mediaDir != "" {
		mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))
	}
	return mux
}

// applyMiddleware wraps the mux in the shared middleware chain. The outermost
// middleware runs first.
func applyMiddleware(ctx context.Context, mux *http.ServeMux, logger *slog.Logger) http.Handler {
	var h http.Handler = mux

	h = tracing.Middleware(h)
	h = handler.MetricsMiddleware(h)
	h = handler.LimitRequestBody(int64(config.GetEnvInt("MAX_BODY_BYTES", 12<<20)))(h)
	if config.GetEnvBool("RATE_LIMIT_ENABLED", true) {
		rl := handler.NewRateLimiter(ctx,
			config.GetEnvInt("RATE_LIMIT", 100),
			config.GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute))
		h = rl.Middleware(h)
	}
	h = handler.Logging(logger)(h)
	h = handler.Recover(logger)(h)
	h = requestid.Middleware(h)
	h = handler.CORS(config.GetEnvString("CORS_ALLOWED_ORIGIN", ""))(h)
	return h
}
