package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/wajeht/bang/internal/bangs"
	"github.com/wajeht/bang/internal/config"
	"github.com/wajeht/bang/internal/fetcher"
	"github.com/wajeht/bang/internal/httpserver"
	"github.com/wajeht/bang/internal/httpserver/deps"
	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/notify"
	"github.com/wajeht/bang/internal/redis"
	"github.com/wajeht/bang/internal/scheduler"
	"github.com/wajeht/bang/internal/search"
	"github.com/wajeht/bang/internal/session"
	redisstore "github.com/wajeht/bang/internal/store/redis"
	"github.com/wajeht/bang/internal/store/sqlite"
	"github.com/wajeht/bang/internal/tasks"
	"github.com/wajeht/bang/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	db          *sqlite.Store
	redisClient *goredis.Client
	reloader    *scheduler.DictReloader
	runner      *tasks.Runner
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open SQLite early - fail fast if the data directory is broken
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		loggerClient.Errorf("Failed to open database at %s: %v", cfg.DBPath, err)
		os.Exit(1)
	}
	loggerClient.Infof("Database ready at %s", cfg.DBPath)

	// Redis is optional: without it, anonymous session state lives in memory
	// and is lost on restart.
	var redisClient *goredis.Client
	var sessions session.Store
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		sessions = redisstore.NewSessionStore(redisClient, cfg.SessionTTL)
		loggerClient.Info("Redis session store initialized")
	} else {
		sessions = session.NewMemoryStore()
		loggerClient.Warn("Redis not configured, session state will not survive restarts")
	}

	// Bang dictionary with manual reload trigger
	catalog := bangs.NewCatalog()
	reloadTrigger := make(chan struct{}, 1)
	reloader := scheduler.NewDictReloader(
		bangs.NewLoader(cfg.DatasetFile, cfg.LocalBangsFile),
		catalog,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Background workers
	notifier := notify.New(cfg.NotifyWebhookURL, cfg.NotifyTimeout, loggerClient)
	runner := tasks.New(
		db,
		session.NewTracker(sessions),
		fetcher.NewTitleFetcher(),
		notifier,
		cfg.QueueWidth,
		cfg.QueueBuffer,
		loggerClient,
	)

	engine := search.NewEngine(catalog, db, sessions, runner, loggerClient)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		Engine:        engine,
		Catalog:       catalog,
		DB:            db,
		RedisClient:   redisClient,
		Notifier:      notifier,
		PendingTasks:  runner.Pending,
		ReloadTrigger: reloadTrigger,
		SessionTTL:    cfg.SessionTTL,
		AdminCIDRs:    cfg.AdminCIDRs,
		TrustProxy:    cfg.TrustProxy,
		CORSOrigins:   cfg.CORSOrigins,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		db:          db,
		redisClient: redisClient,
		reloader:    reloader,
		runner:      runner,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting Bang v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Bang %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the bang dictionary and start periodic refresh
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start dictionary reloader: %w", err)
	}
	a.logger.Info("dictionary reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start background worker pools
	a.runner.Start(ctx)
	a.logger.Info("background queues started",
		logger.Int("width", a.cfg.QueueWidth))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
	a.runner.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warnf("failed to close database: %v", err)
	}

	a.logger.Info("Bang stopped cleanly")
	return nil
}
