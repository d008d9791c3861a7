package routes

import (
	"CreditCtrl/internal/domain/credit"
	"CreditCtrl/internal/domain/performance"
	"CreditCtrl/internal/domain/plan"
	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	PlanService        *plan.Service
	PerformanceService *performance.Service
	CreditService      *credit.Service
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
