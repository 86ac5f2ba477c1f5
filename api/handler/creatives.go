package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brandscout/competitor"
	"github.com/use-agent/brandscout/creative"
	"github.com/use-agent/brandscout/models"
	"github.com/use-agent/brandscout/store"
)

// GenerateCreative returns a handler for POST /api/v1/generate-creative.
func GenerateCreative(gen *creative.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.GenerateCreativeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		resp, err := gen.Generate(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// ListCreatives returns a handler for GET /api/v1/creatives.
func ListCreatives(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q models.ListCreativesQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			badRequest(c, err)
			return
		}

		creatives, err := st.ListCreatives(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, creatives)
	}
}

// AnalyzeCompetitors returns a handler for POST /api/v1/analyze-competitors.
func AnalyzeCompetitors(table *competitor.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeCompetitorsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		analysis, err := table.Analyze(req.BrandCategory, req.Region, req.Platform)
		if err != nil {
			if errors.Is(err, competitor.ErrNotFound) {
				err = models.NewAPIError(models.ErrCodeNotFound, err.Error(), err)
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, analysis)
	}
}
