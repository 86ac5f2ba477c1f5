package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brandscout/models"
)

// respondError writes err as {error, code} with the status its code maps to.
func respondError(c *gin.Context, err error) {
	apiErr := models.AsAPIError(err)
	c.JSON(statusFor(apiErr), apiErr.ToResponse())
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: err.Error(),
		Code:  models.ErrCodeInvalidInput,
	})
}

// statusFor translates error codes to HTTP status codes.
func statusFor(e *models.APIError) int {
	switch e.Code {
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeNotFound:
		return http.StatusNotFound // 404
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeImageGeneration:
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
