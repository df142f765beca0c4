package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/CaravanBooker/internal/config"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/handler"
	"github.com/stpnv0/CaravanBooker/internal/lock"
	"github.com/stpnv0/CaravanBooker/internal/middleware"
	"github.com/stpnv0/CaravanBooker/internal/notification"
	"github.com/stpnv0/CaravanBooker/internal/repository"
	"github.com/stpnv0/CaravanBooker/internal/repository/boltdb"
	"github.com/stpnv0/CaravanBooker/internal/router"
	"github.com/stpnv0/CaravanBooker/internal/service"
	"github.com/stpnv0/CaravanBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type repositories struct {
	users        ports.UserRepo
	caravans     ports.CaravanRepo
	reservations ports.ReservationRepo
	payments     ports.PaymentRepo
	reviews      ports.ReviewRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	bolt       *boltdb.DB
	redis      *redis.Client
	kafka      *notification.KafkaPublisher
	hub        *notification.Hub
	hubDone    chan struct{}
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg, hubDone: make(chan struct{})}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CaravanBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	repos, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(repos); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*repositories, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageDriverBolt:
		return a.initBolt()
	default:
		if err := a.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		return &repositories{
			users:        repository.NewUserRepo(a.db),
			caravans:     repository.NewCaravanRepo(a.db),
			reservations: repository.NewReservationRepo(a.db),
			payments:     repository.NewPaymentRepo(a.db),
			reviews:      repository.NewReviewRepo(a.db),
		}, nil
	}
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

func (a *App) initBolt() (*repositories, error) {
	if dir := filepath.Dir(a.cfg.Bolt.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create bolt dir: %w", err)
		}
	}

	db, err := boltdb.Open(a.cfg.Bolt.Path, a.cfg.Bolt.OpenTimeout)
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	a.bolt = db

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "bolt storage opened",
		logger.String("path", a.cfg.Bolt.Path),
	)

	return &repositories{
		users:        boltdb.NewUserRepo(db),
		caravans:     boltdb.NewCaravanRepo(db),
		reservations: boltdb.NewReservationRepo(db),
		payments:     boltdb.NewPaymentRepo(db),
		reviews:      boltdb.NewReviewRepo(db),
	}, nil
}

func (a *App) initLocker() (ports.Locker, error) {
	if a.cfg.Redis.Addr == "" {
		a.log.Info("redis is not configured, using in-process caravan lock")
		return lock.NewLocal(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	a.redis = client

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis caravan lock enabled",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("lock_ttl", a.cfg.Redis.LockTTL),
	)

	return lock.NewRedis(client, a.cfg.Redis.LockTTL, a.cfg.Redis.LockWait, a.log), nil
}

func (a *App) initNotifications(users ports.UserRepo) error {
	a.hub = notification.NewHub(a.cfg.Notifications.QueueSize, a.cfg.Notifications.HistorySize, a.log)
	a.hub.Subscribe(notification.NewLogSubscriber(a.log))

	if brokers := a.cfg.Kafka.BrokerList(); len(brokers) > 0 {
		a.kafka = notification.NewKafkaPublisher(brokers, a.cfg.Kafka.Topic)
		a.hub.Subscribe(a.kafka)
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "kafka publisher enabled",
			logger.String("topic", a.cfg.Kafka.Topic),
			logger.Int("brokers", len(brokers)),
		)
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, users, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}
	a.hub.Subscribe(tg)

	return nil
}

func (a *App) initServices(repos *repositories) error {
	discount, err := domain.NewDiscountPolicy(a.cfg.Discount.Kind, a.cfg.Discount.Value)
	if err != nil {
		return fmt.Errorf("discount policy: %w", err)
	}

	locker, err := a.initLocker()
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	if err = a.initNotifications(repos.users); err != nil {
		return err
	}

	userService := service.NewUserService(repos.users)
	caravanService := service.NewCaravanService(repos.caravans, repos.users)
	paymentService := service.NewPaymentService(repos.payments, repos.reservations, a.log)
	reservationService := service.NewReservationService(
		repos.reservations,
		repos.caravans,
		discount,
		paymentService,
		userService,
		a.hub,
		locker,
		a.log,
	)
	reviewService := service.NewReviewService(repos.reviews, repos.caravans, repos.users, userService, a.log)

	h := handler.NewHandler(userService, caravanService, reservationService, paymentService, reviewService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
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

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		defer close(a.hubDone)
		a.hub.Start(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	return errors.Join(runErr, a.shutdown())
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	// диспетчер дораздаёт очередь после отмены контекста
	select {
	case <-a.hubDone:
	case <-shutdownCtx.Done():
		a.log.Warn("notification queue was not drained before timeout")
	}

	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka writer: %w", err))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if a.bolt != nil {
		if err := a.bolt.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close bolt: %w", err))
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "bolt storage closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
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
