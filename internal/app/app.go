package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/config"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/handler"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/middleware"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/notification"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/repository"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/repository/redisrepo"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/router"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/scheduler"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/service"
	"github.com/AmerSikira/ljubija-crm-sub000/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	redis       *redis.Client
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
	rateLimiter *middleware.LimiterStore
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GraveRegistry",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if cfg.Storage.Driver == config.StorageDriverRedis {
		if err = app.initRedis(); err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.String("key_prefix", a.cfg.Redis.KeyPrefix),
	)

	return nil
}

func (a *App) initServices() error {
	catalog, err := domain.NewCatalog(a.cfg.Catalog.Letters, a.cfg.Catalog.MaxPerLetter)
	if err != nil {
		return fmt.Errorf("init catalog: %w", err)
	}

	var reservationRepo ports.ReservationRepo
	switch a.cfg.Storage.Driver {
	case config.StorageDriverRedis:
		reservationRepo = redisrepo.NewReservationStore(a.redis, a.cfg.Redis.KeyPrefix)
	default:
		reservationRepo = repository.NewReservationRepo(a.db)
	}
	memberRepo := repository.NewMemberRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	memberService := service.NewMemberService(memberRepo)
	reservationService := service.NewReservationService(
		reservationRepo,
		memberRepo,
		n,
		catalog,
		a.log,
		service.WithPageSize(a.cfg.Catalog.PageSize, a.cfg.Catalog.MaxPageSize),
	)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	a.rateLimiter = middleware.NewLimiterStore(
		a.cfg.RateLimit.RPS,
		a.cfg.RateLimit.Burst,
		a.cfg.RateLimit.IdleTTL,
	)

	h := handler.NewHandler(reservationService, memberService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RateLimit(a.rateLimiter, a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "services initialized",
		logger.String("storage", a.cfg.Storage.Driver),
		logger.Int("capacity", catalog.Capacity()),
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler.Enabled() {
		go a.scheduler.Start(ctx)
	}
	a.rateLimiter.StartJanitor(ctx, a.cfg.RateLimit.IdleTTL/2)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
