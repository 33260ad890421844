package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"shortlink/internal/analytics"
	"shortlink/internal/cache"
	"shortlink/internal/config"
	"shortlink/internal/handler"
	"shortlink/internal/metrics"
	custommiddleware "shortlink/internal/middleware"
	"shortlink/internal/qrcode"
	"shortlink/internal/repository"
	"shortlink/internal/repository/memory"
	"shortlink/internal/repository/sqlite"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
	"shortlink/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type linkStore interface {
	service.LinkStore
	service.ClickStore
	analytics.ClickSink
	io.Closer
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (linkStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		dbURL := cfg.Database.URL()
		if err := repository.Migrate(dbURL, logger); err != nil {
			return nil, err
		}
		return repository.NewLinkRepository(ctx, dbURL, cfg.Database.MaxConns)
	case config.StoreDriverSQLite:
		return sqlite.Open(ctx, cfg.Store.SQLiteURL)
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store, links will not survive a restart")
		return memory.New(), nil
	default:
		return nil, config.ErrInvalidStoreDriver
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer store.Close()
	logger.Info("store ready", slog.String("driver", cfg.Store.Driver))

	eventIDs, err := shortener.NewEventIDs()
	if err != nil {
		return fmt.Errorf("failed to create event id encoder: %w", err)
	}

	linkCache := cache.New(cfg.Cache.Capacity, cfg.Cache.TTL)

	reportCache, err := cache.NewReportCache(cfg.ReportCache.MaxSizePow2, cfg.ReportCache.TTL)
	if err != nil {
		return fmt.Errorf("failed to create report cache: %w", err)
	}
	defer reportCache.Close()

	recorder := metrics.NewRecorder()

	sinks := []analytics.ClickSink{store}
	if cfg.Analytics.NATSURL != "" {
		conn, err := analytics.ConnectNATS(cfg.Analytics.NATSURL)
		if err != nil {
			return err
		}
		defer conn.Close()
		sinks = append(sinks, analytics.NewNATSSink(conn, cfg.Analytics.NATSSubject))
		logger.Info("publishing click events",
			slog.String("url", cfg.Analytics.NATSURL),
			slog.String("subject", cfg.Analytics.NATSSubject))
	}

	clicks := analytics.NewRecorder(cfg.Analytics, recorder, logger, sinks...)
	// The flush loop outlives ctx so that Close can drain after shutdown.
	clicks.Start(context.WithoutCancel(ctx))
	defer clicks.Close()

	links := service.NewLinkService(service.Deps{
		Links:    store,
		Clicks:   store,
		Cache:    linkCache,
		Reports:  reportCache,
		Codes:    shortener.NewGenerator(),
		QR:       qrcode.NewEncoder(cfg.App.QRSize),
		EventIDs: eventIDs,
		Recorder: clicks,
		Validator: validation.NewURLValidator(
			cfg.Validation.MaxURLLength,
			cfg.Validation.MaxBatchSize,
			cfg.Validation.AllowPrivateIPs,
		),
		Instruments: recorder,
		Logger:      logger,
	}, service.Options{
		BaseURL:           cfg.App.BaseURL,
		MaxCreateAttempts: cfg.App.MaxCreateAttempts,
		StoreTimeout:      cfg.App.StoreTimeout,
		TaskTimeout:       cfg.App.TaskTimeout,
		RecentClicksLimit: cfg.App.RecentClicksLimit,
	})
	// Runs before clicks.Close so in-flight click tasks still reach the buffer.
	defer links.Wait()

	var pool poolStater
	if repo, ok := store.(*repository.LinkRepository); ok {
		pool = repo
	}
	go collectInfraMetrics(ctx, recorder, pool, linkCache)

	h := handler.New(links, logger, cfg.App.RedirectStatus)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))
	e.Use(custommiddleware.Owner(cfg.Auth.JWTSecret, logger))

	h.Register(e)
	e.GET("/metrics", echo.WrapHandler(recorder.Handler()))

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer, err := serve(ctx, e, httpAddr, cfg.Server.MaxConnections, nil, logger)
	if err != nil {
		return err
	}

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}
		tlsConfig := &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		}

		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		httpsServer, err = serve(ctx, e, httpsAddr, cfg.Server.MaxConnections, tlsConfig, logger)
		if err != nil {
			return err
		}
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func serve(ctx context.Context, e *echo.Echo, addr string, maxConns int, tlsConfig *tls.Config, logger *slog.Logger) (*http.Server, error) {
	scheme := "http"
	if tlsConfig != nil {
		scheme = "https"
	}
	logger.Info("starting server",
		slog.String("scheme", scheme),
		slog.String("addr", addr),
		slog.Int("max_connections", maxConns))

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s listener: %w", scheme, err)
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	if tlsConfig != nil {
		ln = tls.NewListener(ln, tlsConfig)
	}

	srv := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("scheme", scheme), slog.String("error", err.Error()))
		}
	}()

	return srv, nil
}

type poolStater interface {
	PoolStats() repository.PoolStats
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, pool poolStater, linkCache *cache.LinkCache) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hits, misses, ratio := linkCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			m := metrics.InfraMetric{
				Time:          time.Now(),
				CacheEntries:  linkCache.Len(),
				CacheHits:     int64(hits),
				CacheMisses:   int64(misses),
				CacheHitRatio: ratio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			}
			if pool != nil {
				s := pool.PoolStats()
				m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax = s.Acquired, s.Idle, s.Total, s.Max
			}
			recorder.RecordInfra(m)
		}
	}
}
