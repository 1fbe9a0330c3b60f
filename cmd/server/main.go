package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"giftwell/internal/campaign/handler"
	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/service"
	"giftwell/internal/campaign/store/draft"
	"giftwell/internal/campaign/store/session"
	"giftwell/internal/catalog"
	"giftwell/internal/contacts"
	"giftwell/internal/events"
	"giftwell/internal/platform/config"
	"giftwell/internal/platform/httpserver"
	"giftwell/internal/platform/logger"
	"giftwell/internal/platform/metrics"
	"giftwell/internal/platform/postgres"
	platformredis "giftwell/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	pool, err := postgres.Connect(ctx, cfg.Postgres)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	var sessions service.SessionStore = session.NewMemory()
	if redisClient != nil {
		sessions = session.NewRedis(redisClient.Client, cfg.Session.TTL)
	}

	var drafts service.DraftStore = draft.NewMemory()
	if pool != nil {
		pg := draft.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("drafts schema migration failed", "error", err)
			os.Exit(1)
		}
		drafts = pg
	}

	var fetcher catalog.Fetcher = staticCatalog{}
	if cfg.Catalog.URL != "" {
		fetcher = catalog.NewHTTPFetcher(cfg.Catalog.URL)
	}
	catalogOpts := []catalog.Option{
		catalog.WithLogger(log),
		catalog.WithMetrics(m),
	}
	if redisClient != nil {
		catalogOpts = append(catalogOpts, catalog.WithCache(catalog.NewRedisCache(redisClient.Client, cfg.Catalog.CacheTTL)))
	}
	bundleCatalog := catalog.New(fetcher, catalogOpts...)

	var searcher contacts.Searcher
	var listSource contacts.ListSource
	if cfg.Contacts.URL != "" {
		client := contacts.NewHTTPClient(cfg.Contacts.URL)
		searcher, listSource = client, client
	} else {
		dir := contacts.NewStaticDirectory()
		searcher, listSource = dir, dir
	}

	group, ctx := errgroup.WithContext(ctx)

	var publisher events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka client failed", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		publisher = kafka
		log.Info("publishing lifecycle events to kafka", "topic", cfg.Kafka.Topic)
	} else {
		inbox := make(chan events.Event, 64)
		worker := events.NewWorker(events.NewMemoryStore(), inbox)
		publisher = events.NewChannelPublisher(inbox)
		group.Go(func() error {
			if err := worker.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	svc := service.New(sessions, drafts, bundleCatalog, searcher,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithPublisher(publisher),
		service.WithListSource(listSource),
		service.WithSearchTuning(cfg.Search.QuietPeriod, cfg.Search.MinQueryLength),
	)
	defer svc.Close()

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	group.Go(func() error {
		log.Info("starting giftwell", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// staticCatalog serves the built-in bundles when no inventory URL is set.
type staticCatalog struct{}

func (staticCatalog) FetchBundles(context.Context) ([]models.Bundle, error) {
	return catalog.DefaultBundles(), nil
}
