package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/RentalHandover/internal/capture"
	"github.com/stpnv0/RentalHandover/internal/config"
	"github.com/stpnv0/RentalHandover/internal/handler"
	"github.com/stpnv0/RentalHandover/internal/middleware"
	"github.com/stpnv0/RentalHandover/internal/notification"
	"github.com/stpnv0/RentalHandover/internal/obs"
	"github.com/stpnv0/RentalHandover/internal/realtime"
	"github.com/stpnv0/RentalHandover/internal/repository"
	"github.com/stpnv0/RentalHandover/internal/router"
	"github.com/stpnv0/RentalHandover/internal/scheduler"
	"github.com/stpnv0/RentalHandover/internal/service"
	"github.com/stpnv0/RentalHandover/internal/storage"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "RentalHandover"
	version       = "0.1.0"
	migrationsDir = "migrations"
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
	coordinator *realtime.Coordinator
	fanout      *notification.Fanout
	publisher   *notification.Publisher
	shutdownTr  func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	shutdown, err := obs.InitTracer(context.Background(), obs.TracerOptions{
		ServiceName: appName,
		Version:     version,
		Environment: a.cfg.Gin.Mode,
		Endpoint:    a.cfg.Tracing.Endpoint,
		SampleRatio: a.cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	a.shutdownTr = shutdown

	if a.cfg.Tracing.Endpoint != "" {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "tracing enabled",
			logger.String("endpoint", a.cfg.Tracing.Endpoint),
		)
	}
	return nil
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

func (a *App) initServices() error {
	ctx := context.Background()

	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	spool, err := capture.NewSpool(a.cfg.Capture.SpoolDir)
	if err != nil {
		return fmt.Errorf("init capture spool: %w", err)
	}
	capturer := capture.NewCapturer(spool, nil, a.log)

	store, err := a.initStorage(ctx, spool)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, bookingRepo, userRepo, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	sinks := []notification.Sink{tg}

	var signals realtime.SignalPublisher
	if a.cfg.RabbitMQ.URL != "" {
		pub, err := notification.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
		if err != nil {
			return fmt.Errorf("init rabbitmq publisher: %w", err)
		}
		a.publisher = pub
		sinks = append(sinks, pub)
		signals = pub
		a.log.LogAttrs(ctx, logger.InfoLevel, "rabbitmq publisher connected",
			logger.String("exchange", a.cfg.RabbitMQ.Exchange),
		)
	} else {
		a.log.Warn("rabbitmq url is empty, bus notifications disabled")
	}
	a.fanout = notification.NewFanout(a.log, sinks...)

	views := realtime.NewViewCache()
	dsn := a.cfg.Postgres.DSN()
	a.coordinator = realtime.NewCoordinator(
		func(ctx context.Context) (realtime.Feed, error) {
			feed, err := realtime.OpenPQFeed(ctx, dsn, a.log)
			if err != nil {
				return nil, err
			}
			return feed, nil
		},
		views,
		signals,
		a.log,
	)
	hub := realtime.NewHub(a.coordinator, a.cfg.Live.AllowedOrigins, a.log)

	bookingService := service.NewBookingService(bookingRepo, views, a.fanout, a.log)
	verificationService := service.NewVerificationService(
		bookingRepo,
		store,
		capturer,
		bookingService,
		a.fanout,
		service.NewWorkingSets(),
		a.cfg.Capture.TTL,
		a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		verificationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	userService := service.NewUserService(userRepo, bookingRepo)

	h := handler.NewHandler(bookingService, verificationService, userService, hub)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(middleware.NewAuthenticator(a.cfg.Auth.Secret, a.cfg.Auth.Issuer)),
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

	return nil
}

// initStorage builds the upload chain: SDK then presigned transport, primary then fallback target.
func (a *App) initStorage(ctx context.Context, spool *capture.Spool) (*storage.Adapter, error) {
	sc := a.cfg.Storage

	client, err := storage.NewS3Client(ctx, storage.S3Options{
		Region:        sc.Region,
		Endpoint:      sc.Endpoint,
		PathStyle:     sc.PathStyle,
		PresignExpiry: sc.PresignExpiry,
	})
	if err != nil {
		return nil, err
	}

	transports := []storage.Transport{
		storage.NewSDKTransport(client),
		storage.NewPresignedTransport(client, sc.PresignExpiry),
	}
	targets := []storage.Target{
		{Name: "primary", Bucket: sc.Bucket, PublicURL: sc.PublicURL},
	}
	if sc.FallbackBaseURL != "" {
		targets = append(targets, storage.Target{Name: "fallback", Bucket: sc.FallbackBucket, PublicURL: sc.FallbackBaseURL})
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "evidence storage configured",
		logger.String("bucket", sc.Bucket),
		logger.Int("targets", len(targets)),
	)

	return storage.NewAdapter(spool, transports, targets, a.log)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.scheduler.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		a.coordinator.Run(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		stop()
	}

	wg.Wait()

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
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

	a.fanout.Wait()
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("failed to close rabbitmq publisher", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	if err := a.shutdownTr(shutdownCtx); err != nil {
		a.log.Warn("failed to flush traces", logger.String("error", err.Error()))
	}

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
