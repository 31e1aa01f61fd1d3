package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rumianagent-hub/parkshare-mvp/internal/cache"
	"github.com/rumianagent-hub/parkshare-mvp/internal/config"
	"github.com/rumianagent-hub/parkshare-mvp/internal/middleware"
	"github.com/rumianagent-hub/parkshare-mvp/internal/passtoken"
	"github.com/rumianagent-hub/parkshare-mvp/internal/pricing"
	"github.com/rumianagent-hub/parkshare-mvp/internal/service"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage/postgres"
	transport "github.com/rumianagent-hub/parkshare-mvp/internal/transport/http"

	"github.com/go-chi/chi/v5"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Секрет пропусков проверяется до любых сетевых подключений (fail-fast).
	signer, err := passtoken.New(cfg.Pass.Secret)
	if err != nil {
		log.Error("passtoken_init_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	log.Info("postgres_connected")

	// Сервис.
	pricer := pricing.New(cfg.Pricing.ServiceFeeRate, cfg.Pricing.TaxRate, cfg.Pricing.Currency)
	srvc := service.New(str, signer, pricer, &service.MockGateway{}, cfg.Pass)

	// Кэш подписок — опционален: без Redis проверка пропусков ходит в БД.
	var scache cache.SubscriptionCache
	if cfg.Redis.RedisURL != "" {
		cacheCtx, cacheCancel := context.WithTimeout(rootCtx, 5*time.Second)
		scache, err = cache.NewRedisCache(cacheCtx, cfg.Redis.RedisURL, "")
		cacheCancel()
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			rootCancel()
			str.Close()
			os.Exit(1)
		}

		srvc.SetSubscriptionCache(scache)
		log.Info("redis_connected")
	}
	log.Info("service_initialized")

	var ready int32 // 0 — not ready; 1 — ready

	router := chi.NewRouter()
	router.Use(
		middleware.Recover(log),
		middleware.RequestLogger(log),
		middleware.WithTimeout(cfg.Timeouts.Service),
	)

	router.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	router.Handle("/metrics", promhttp.Handler())

	// Эндпоинты API v1.
	transport.NewServer(srvc).Routes(router)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Фоновая разметка просроченных подписок.
	startExpiryJanitor(rootCtx, str, log, cfg.Janitor.Period)

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", slog.String("addr", httpAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = httpSrv.Close()
	} else {
		log.Info("http_stopped")
	}

	// Явная очистка перед выходом.
	shutdownCancel()
	rootCancel()
	if scache != nil {
		_ = scache.Close()
	}
	str.Close()

	log.Info("service_stopped")
	os.Exit(0)
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}

// startExpiryJanitor запускает фоновую задачу, которая периодически помечает
// подписки с истёкшим оплаченным периодом как expired с помощью
// storage.ExpireSubscriptions.
func startExpiryJanitor(ctx context.Context, storage storage.Storage, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := storage.ExpireSubscriptions(ctx, time.Now().UTC())
				if err != nil {
					log.Error("expiry_janitor_failed", slog.String("err", err.Error()))
					continue
				}
				if n > 0 {
					log.Info("subscriptions_expired", slog.Int64("count", n))
				}
			}
		}
	}()
}
