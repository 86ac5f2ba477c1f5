package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/use-agent/brandscout/api/handler"
	"github.com/use-agent/brandscout/api/middleware"
	"github.com/use-agent/brandscout/brand"
	"github.com/use-agent/brandscout/cache"
	"github.com/use-agent/brandscout/competitor"
	"github.com/use-agent/brandscout/config"
	"github.com/use-agent/brandscout/creative"
	"github.com/use-agent/brandscout/scraper"
	"github.com/use-agent/brandscout/store"
)

// Services are the components the routes are served by. Browser, Cache
// and Gatherer may be nil.
type Services struct {
	Scraper   *brand.Scraper
	Store     *store.Store
	Generator *creative.Generator
	Table     *competitor.Table
	Browser   *scraper.Browser
	Cache     *cache.Cache
	Gatherer  prometheus.Gatherer
	StartTime time.Time
}

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     RateLimit (if enabled)
//
// Health and metrics sit outside the rate limit so probes always work.
// The rate limiter's sweeper stops when ctx is done.
func NewRouter(ctx context.Context, cfg *config.Config, svc Services) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.MaxMultipartMemory = 4 * cfg.Server.MaxUploadBytes

	if svc.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(svc.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	v1.GET("/health", handler.Health(svc.Store, svc.Browser, svc.Cache, svc.StartTime))

	limited := v1.Group("")
	if cfg.RateLimit.Enabled {
		limited.Use(middleware.RateLimit(ctx, cfg.RateLimit))
	}

	// Brand scraping
	limited.POST("/scrape-brand-info", handler.ScrapeBrandInfo(svc.Scraper, svc.Cache))

	// Brands and regions
	limited.GET("/brands", handler.ListBrands(svc.Store))
	limited.POST("/brands", handler.CreateBrand(svc.Store))
	limited.GET("/regional-profiles", handler.ListRegionalProfiles(svc.Store))

	// Creatives
	limited.POST("/generate-creative", handler.GenerateCreative(svc.Generator))
	limited.GET("/creatives", handler.ListCreatives(svc.Store))
	limited.POST("/analyze-competitors", handler.AnalyzeCompetitors(svc.Table))

	// Uploads
	limited.POST("/upload-image", handler.UploadImage(cfg.Server.MaxUploadBytes))
	limited.POST("/upload-manual-creative", handler.UploadManualCreative(svc.Generator, cfg.Server.MaxUploadBytes))

	return r
}
