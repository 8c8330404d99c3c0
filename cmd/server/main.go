// @title        WAY campus API
// @version      1.0
// @description  Channels, wallet, announcements and assistant for the WAY university platform.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/way-campus/way/docs"
	"github.com/way-campus/way/internal/api"
	"github.com/way-campus/way/internal/core/ports"
	"github.com/way-campus/way/internal/core/service"
	"github.com/way-campus/way/internal/infrastructure/assistant"
	"github.com/way-campus/way/internal/infrastructure/db/memory"
	"github.com/way-campus/way/internal/infrastructure/db/mongo"
	"github.com/way-campus/way/internal/infrastructure/db/redis"
	"github.com/way-campus/way/internal/infrastructure/db/snapshot"
	httpserver "github.com/way-campus/way/internal/infrastructure/http"
	"github.com/way-campus/way/internal/infrastructure/http/handlers"
	"github.com/way-campus/way/internal/infrastructure/queue"
	"github.com/way-campus/way/internal/pkg/config"
	"github.com/way-campus/way/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "way",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	var (
		kv          ports.KeyValueStore
		mongoClient *mongodrv.Client
		redisClient *goredis.Client
	)
	deps := map[string]handlers.Pinger{}

	if cfg.Redis.Addr != "" {
		rc, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		redisClient = rc
		defer redisClient.Close()
		deps["redis"] = pingRedis{redisClient}
	}

	switch cfg.StorageBackend {
	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  "way",
		})
		if err != nil {
			return err
		}
		mongoClient = client
		kv = mongo.NewKVStore(db, cfg.Mongo.Collection)
	case config.BackendRedis:
		kv = redis.NewKVStore(redisClient, cfg.Redis.Prefix)
	default:
		log.Warn().Msg("using in-memory storage, state is lost on restart")
		kv = memory.NewKVStore()
	}
	if mongoClient != nil {
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(dctx)
		}()
	}
	deps["storage"] = kv

	store := snapshot.NewStore(kv, log.With().Str("component", "store").Logger())
	initial, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if userID, ok, err := store.CurrentSession(ctx); err != nil {
		log.Warn().Err(err).Msg("could not read stored session")
	} else if ok {
		log.Info().Str("user_id", userID).Msg("restored session")
	}

	var saver ports.StateSaver = store
	var persister *queue.Persister
	if cfg.PersistQueue {
		persister = queue.NewPersister(store, 0, log.With().Str("component", "persister").Logger())
		persister.Start()
		saver = persister
	}

	// --- Services ---
	state := service.NewStateHolder(initial, saver, log)

	var dedup service.DedupChecker
	if redisClient != nil {
		dedup = redis.NewDedupChecker(redisClient, cfg.Redis.Prefix)
	}

	catalog := service.NewCatalogService(state, log)
	gateway := assistant.NewClient(assistant.Config{
		BaseURL: cfg.Assistant.BaseURL,
		Model:   cfg.Assistant.Model,
		APIKey:  cfg.Assistant.APIKey,
		Timeout: cfg.Assistant.Timeout,
	})
	if cfg.Assistant.APIKey == "" {
		log.Warn().Msg("ASSISTANT_API_KEY not set, assistant will answer with the apology")
	}

	e := httpserver.NewRouter(log, deps)
	api.Register(e, api.Services{
		Auth:        service.NewAuthService(state, cfg.JWTSecret, cfg.TokenTTL, log),
		Ledger:      service.NewLedgerService(state, dedup, cfg.RechargeAmount, log),
		Catalog:     catalog,
		Preferences: catalog,
		Assistant:   service.NewAssistantService(gateway, cfg.Assistant.Timeout, log),
	}, cfg.JWTSecret, log)

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageBackend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if persister != nil {
		if err := persister.Close(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("persister did not drain")
		}
	}
	log.Info().Msg("server stopped")
	return nil
}

type pingRedis struct{ c *goredis.Client }

func (p pingRedis) Ping(ctx context.Context) error { return p.c.Ping(ctx).Err() }
