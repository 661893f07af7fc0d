package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"gppgateway/internal/eforms"
	noticehandler "gppgateway/internal/notice/handler"
	noticemetrics "gppgateway/internal/notice/metrics"
	"gppgateway/internal/notice/service"
	"gppgateway/internal/notice/store"
	"gppgateway/internal/platform/config"
	"gppgateway/internal/platform/httpserver"
	"gppgateway/internal/platform/logger"
	"gppgateway/internal/platform/metrics"
	"gppgateway/internal/platform/redis"
	"gppgateway/internal/platform/tracing"
	"gppgateway/internal/ted"
	tedhandler "gppgateway/internal/ted/handler"
	tedmetrics "gppgateway/internal/ted/metrics"
	httptransport "gppgateway/internal/transport/http"
)

const (
	serviceName     = "gpp-gateway"
	shutdownTimeout = 10 * time.Second
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("gateway stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	analyzer := eforms.NewAnalyzer()
	noticeStore, health, closeStore, err := buildNoticeStore(ctx, cfg, analyzer, log)
	if err != nil {
		return err
	}
	defer closeStore()

	facade := service.New(analyzer, noticeStore,
		service.WithLogger(log),
		service.WithMetrics(noticemetrics.New(reg)),
	)
	tedClient := ted.New(cfg.TED.BaseURL, cfg.TED.APIKey,
		ted.WithLogger(log),
		ted.WithMetrics(tedmetrics.New(reg)),
	)
	if cfg.TED.APIKey == "" {
		log.Warn("TED_API_KEY is empty; visualize and validate calls will be rejected by TED")
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      metrics.New(reg),
		Gatherer:     reg,
		CORS:         cfg.CORS,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Health:       health,
	},
		noticehandler.New(facade, log),
		tedhandler.New(tedClient, facade, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting gpp-gateway",
			"addr", cfg.Addr,
			"notice_store", cfg.NoticeStore.Backend,
			"ted_base_url", tedBaseURL(cfg),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down gpp-gateway")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildNoticeStore picks the manual-testing store. A disabled store is a nil
// interface so the facade rejects manual-testing calls.
func buildNoticeStore(ctx context.Context, cfg config.Server, analyzer *eforms.Analyzer, log *slog.Logger) (service.NoticeStore, httptransport.HealthChecker, func(), error) {
	noop := func() {}
	switch cfg.NoticeStore.Backend {
	case config.StoreDisabled:
		log.Info("manual testing disabled")
		return nil, nil, noop, nil
	case config.StoreRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("connect redis: %w", err)
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Warn("redis close failed", "error", err)
			}
		}
		return store.NewRedis(client.Client, cfg.NoticeStore.Key, analyzer.LoadNotice), client, closeClient, nil
	default:
		return store.NewInMemory(), nil, noop, nil
	}
}

func tedBaseURL(cfg config.Server) string {
	if cfg.TED.BaseURL == "" {
		return ted.DefaultBaseURL
	}
	return cfg.TED.BaseURL
}
