package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brandscout/brand"
	"github.com/use-agent/brandscout/cache"
	"github.com/use-agent/brandscout/models"
)

// ScrapeBrandInfo returns a handler for POST /api/v1/scrape-brand-info.
//
// Every failure of the scrape path answers 400, whatever its code:
// a malformed URL, an unreachable page and an extractor crash all mean
// the caller gets no brand profile for that URL.
func ScrapeBrandInfo(sc *brand.Scraper, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ScrapeBrandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.Defaults()

		key := cache.Key(req.URL, req.FetchMode)
		if cc != nil {
			if cached, hit := cc.Get(key, time.Duration(req.MaxAge)*time.Millisecond); hit {
				c.Header("X-Cache", "hit")
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		result, err := sc.Scrape(c.Request.Context(), &req)
		if err != nil {
			apiErr := models.AsAPIError(err)
			c.JSON(http.StatusBadRequest, apiErr.ToResponse())
			return
		}

		if cc != nil {
			cc.Set(key, result)
			c.Header("X-Cache", "miss")
		}
		c.JSON(http.StatusOK, result)
	}
}
