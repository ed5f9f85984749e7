package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"annotate-me/internal/audit"
	"annotate-me/internal/cache"
	"annotate-me/internal/credentials"
	"annotate-me/internal/database"
	"annotate-me/internal/logger"
	"annotate-me/internal/middleware"
	"annotate-me/internal/router"
	"annotate-me/internal/throttle"
	"annotate-me/internal/view"
	"annotate-me/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "annotate-me/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	auditQueueSize  = 256
	auditTimeout    = 3 * time.Second
	shutdownTimeout = 10 * time.Second
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// newCustomValidator 建立已註冊登入欄位規則的 validator
func newCustomValidator() (*CustomValidator, error) {
	v := validator.New()
	if err := credentials.RegisterValidations(v); err != nil {
		return nil, err
	}
	return &CustomValidator{validator: v}, nil
}

var (
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newWorkerPool   = worker.NewPool
	newRenderer     = view.NewRenderer
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	notifyContext   = func(ctx context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	}
	exitFunc = os.Exit
	logError = func(err error) { log.Print(err) }
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	zl, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("Logger 初始化失敗: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// MIGRATE_DOWN 只退回 migration，不啟動服務
	if cfg.MigrateDown {
		if cfg.DatabaseURL == "" {
			return errors.New("MIGRATE_DOWN 需要設定 DATABASE_URL")
		}
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 退回失敗: %v", err)
		}
		zl.Info("migrations rolled back")
		return nil
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	deps := router.Deps{Log: zl, Audit: audit.Nop{}}

	if cfg.DatabaseURL != "" {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %v", err)
		}

		db, err := newPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("DB 連線失敗: %v", err)
		}
		defer db.Close()

		wp := newWorkerPool(cfg.WorkerCount, auditQueueSize)
		defer wp.Stop()

		deps.DB = db
		deps.Audit = audit.NewDBRecorder(db, wp, zl, auditTimeout)
	} else {
		zl.Info("DATABASE_URL not set, login attempt audit disabled")
	}

	if cfg.RedisAddr != "" {
		rdb, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %v", err)
		}
		defer rdb.Close()

		deps.Cache = rdb
		deps.Limiter = throttle.New(rdb, cfg.SubmitLimit, cfg.SubmitWindow)
	} else {
		zl.Info("REDIS_ADDR not set, submission throttling disabled")
	}

	cv, err := newCustomValidator()
	if err != nil {
		return fmt.Errorf("Validator 初始化失敗: %v", err)
	}
	renderer, err := newRenderer()
	if err != nil {
		return fmt.Errorf("模板載入失敗: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = middleware.IPExtractor(cfg.TrustedProxies)
	e.Validator = cv
	e.Renderer = renderer
	e.Use(middleware.RequestLogger(zl))
	e.Use(echomw.Recover())

	router.Setup(e, deps)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.Addr) }()
	zl.Info("server started", zap.String("addr", cfg.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP 服務失敗: %v", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownServer(sctx, e); err != nil {
		return fmt.Errorf("HTTP 服務關閉失敗: %v", err)
	}
	return nil
}
