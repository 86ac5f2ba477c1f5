package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brandscout/cache"
	"github.com/use-agent/brandscout/models"
	"github.com/use-agent/brandscout/scraper"
	"github.com/use-agent/brandscout/store"
)

const version = "0.1.0"

// Health returns a handler for GET /api/v1/health.
//
// Reports degraded when the database does not answer. browser and cc may
// be nil.
func Health(st *store.Store, browser *scraper.Browser, cc *cache.Cache, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := models.HealthResponse{
			Status:  "healthy",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Store:   "ok",
		}
		if err := st.Ping(c.Request.Context()); err != nil {
			resp.Status = "degraded"
			resp.Store = err.Error()
		}
		if browser != nil {
			stats := browser.Stats()
			resp.Browser = &stats
		}
		if cc != nil {
			resp.CacheSize = cc.Len()
		}
		c.JSON(http.StatusOK, resp)
	}
}
