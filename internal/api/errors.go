package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/kioskhub/dashboard/backend/internal/mealplan"
	"github.com/kioskhub/dashboard/backend/internal/middleware"
	"github.com/kioskhub/dashboard/backend/internal/service"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidHousehold), errors.Is(err, service.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, mealplan.ErrSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusBadRequest {
		msg = err.Error()
	} else {
		_ = c.Error(err)
		logger.Named("api").Error(msg,
			zap.String("path", c.FullPath()),
			zap.String("household", c.Param("household")),
			zap.Error(err),
		)
	}
	middleware.AbortWithError(c, status, msg)
}

func badRequest(c *gin.Context, msg string) {
	middleware.AbortWithError(c, http.StatusBadRequest, msg)
}
