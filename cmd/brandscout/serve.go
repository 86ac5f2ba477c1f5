package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/use-agent/brandscout/api"
	"github.com/use-agent/brandscout/brand"
	"github.com/use-agent/brandscout/cache"
	"github.com/use-agent/brandscout/competitor"
	"github.com/use-agent/brandscout/config"
	"github.com/use-agent/brandscout/creative"
	"github.com/use-agent/brandscout/engine"
	"github.com/use-agent/brandscout/llm"
	"github.com/use-agent/brandscout/metrics"
	"github.com/use-agent/brandscout/scraper"
	"github.com/use-agent/brandscout/store"
	"github.com/use-agent/brandscout/webhook"
)

func runServe(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Logging ──────────────────────────────────────────────────
	initLogger(cfg.Log)
	slog.Info("brandscout starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"browser", cfg.Browser.Enabled,
	)

	// ── 2. Persistence ──────────────────────────────────────────────
	st, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()
	if cfg.Store.SeedRegions {
		if _, err := st.SeedRegionalProfiles(ctx); err != nil {
			return err
		}
	}

	table, err := competitor.Load()
	if err != nil {
		return err
	}

	// ── 3. Metrics ──────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// ── 4. Fetch engines and scraper ────────────────────────────────
	browser, sc := buildScraper(cfg, m)
	if browser != nil {
		defer browser.Close()
	}

	// ── 5. Creative generation ──────────────────────────────────────
	var images creative.ImageGenerator
	if ic, err := llm.NewImageClient(cfg.ImageGen); err != nil {
		slog.Warn("image generation disabled, creatives will use placeholder images", "reason", err)
	} else {
		images = ic
	}
	notifier := webhook.New(cfg.Webhook.URL, cfg.Webhook.Secret)
	gen := creative.NewGenerator(st, table, images,
		creative.WithNotifier(notifier),
		creative.WithMetrics(m),
	)

	cc := cache.New(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	defer cc.Stop()

	// ── 6. Router and server ────────────────────────────────────────
	router := api.NewRouter(ctx, cfg, api.Services{
		Scraper:   sc,
		Store:     st,
		Generator: gen,
		Table:     table,
		Browser:   browser,
		Cache:     cc,
		Gatherer:  reg,
		StartTime: time.Now(),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// ── 7. Graceful shutdown ────────────────────────────────────────
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give in-flight requests 5 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	slog.Info("brandscout stopped")
	return nil
}

// buildScraper wires the fetch engines. Without a browser every fetch
// mode is served over HTTP; with one, "auto" races HTTP against Chrome
// with staged start delays and remembers the winner per domain.
func buildScraper(cfg *config.Config, m *metrics.Metrics) (*scraper.Browser, *brand.Scraper) {
	httpEngine := engine.NewHTTPEngine()
	opts := []brand.Option{brand.WithMetrics(m)}

	var browser *scraper.Browser
	if cfg.Browser.Enabled {
		b, err := scraper.NewBrowser(cfg.Browser, cfg.Scraper)
		if err != nil {
			slog.Error("browser unavailable, falling back to http only", "error", err)
		} else {
			browser = b
			rod := engine.NewRodEngine(b.Render)
			memory := engine.NewDomainMemory(cfg.Engine.DomainMemoryTTL)
			auto := engine.NewDispatcher([]engine.Engine{httpEngine, rod}, cfg.Engine.EscalationDelays, memory)
			opts = append(opts, brand.WithBrowser(rod, auto))
			slog.Info("browser engine enabled", "delays", cfg.Engine.EscalationDelays)
		}
	}

	return browser, brand.NewScraper(cfg.Scraper, httpEngine, opts...)
}
