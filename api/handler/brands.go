package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brandscout/models"
	"github.com/use-agent/brandscout/store"
)

// ListBrands returns a handler for GET /api/v1/brands.
func ListBrands(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := st.ListBrands(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// CreateBrand returns a handler for POST /api/v1/brands.
func CreateBrand(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBrandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		b, err := st.CreateBrand(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// ListRegionalProfiles returns a handler for GET /api/v1/regional-profiles.
func ListRegionalProfiles(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := st.ListRegionalProfiles(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}
