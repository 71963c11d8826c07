package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mynav/mynav/internal/ai"
	"github.com/mynav/mynav/internal/catalog"
	"github.com/mynav/mynav/internal/config"
	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/httpserver"
	"github.com/mynav/mynav/internal/httpserver/deps"
	"github.com/mynav/mynav/internal/logger"
	"github.com/mynav/mynav/internal/redis"
	"github.com/mynav/mynav/internal/sources/seed"
	blobstore "github.com/mynav/mynav/internal/store/redis"
	"github.com/mynav/mynav/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *catalog.Store
	gate        *catalog.Gate
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
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
	loggerClient.Info("Redis initialized successfully")

	// Catalog store over the Redis blob substrate
	store := catalog.NewStore(blobstore.NewStore(redisClient), loggerClient)

	// First-run seed: either the configured YAML file or the built-in
	// starter catalog. Only applied to collections with no blob yet.
	catalogSeed := loadSeed(cfg, loggerClient)
	if err := store.Hydrate(context.Background(), catalogSeed); err != nil {
		loggerClient.Errorf("Failed to hydrate catalog: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("catalog hydrated",
		logger.Int("links", len(store.Links())),
		logger.Int("categories", len(store.Categories())))

	// Access gate: locked iff a password is configured right now.
	gate := catalog.NewGate(store.Password)
	if gate.Unlocked() {
		loggerClient.Info("no password configured, catalog starts unlocked")
	} else {
		loggerClient.Info("password configured, catalog starts locked")
	}

	// Gemini collaborators (disabled without an API key)
	aiClient := ai.New(ai.Config{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		Timeout:    cfg.GeminiTimeout,
	}, loggerClient)
	if !aiClient.Enabled() {
		loggerClient.Info("gemini api key not configured, ai endpoints will refuse politely")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Ping: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		Catalog: store,
		Gate:    gate,
		AI:      aiClient,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     store,
		gate:        gate,
	}
}

// loadSeed resolves the first-run catalog. A broken seed file is a
// startup failure: silently falling back could hydrate the wrong
// catalog and persist it.
func loadSeed(cfg *config.Config, log logger.Logger) catalog.Seed {
	if cfg.SeedFile == "" {
		return catalog.Seed{
			Links:      domain.DefaultLinks(),
			Categories: domain.DefaultCategories(),
			Settings:   domain.DefaultSettings(),
		}
	}

	log.Info("seed file configured", logger.String("file", cfg.SeedFile))
	file, err := seed.NewLoader(cfg.SeedFile).Load()
	if err != nil {
		log.Errorf("Failed to load seed file: %v", err)
		os.Exit(1)
	}
	return seed.NewMapper().Map(file)
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting mynav v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("mynav %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ mynav stopped cleanly")
	return nil
}
