package routes

import (
	"errors"
	"net/http"

	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// GetMonthPerformance reports plan completion for the month of the requested
// date, evaluated as of that date.
func (h *Handler) GetMonthPerformance(c *gin.Context) {
	target, err := pkg.ParseReportDate(c.Param("date"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date", "invalid date format, expected DD-MM-YYYY"))
		return
	}

	ctx := c.Request.Context()
	results, err := h.PerformanceService.MonthPerformance(ctx, target)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

type yearParams struct {
	Year int `uri:"year" binding:"required,gte=1900,lte=2200"`
}

// GetYearPerformance reports the per-month plan completion rows for a year.
func (h *Handler) GetYearPerformance(c *gin.Context) {
	var params yearParams
	if err := c.ShouldBindUri(&params); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			h.respondError(c, err)
			return
		}
		h.respondError(c, appErrors.NewValidationError("year", "year must be a four-digit number"))
		return
	}

	ctx := c.Request.Context()
	results, err := h.PerformanceService.YearPerformance(ctx, params.Year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
