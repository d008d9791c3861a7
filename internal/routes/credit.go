package routes

import (
	"net/http"
	"strconv"

	appErrors "CreditCtrl/internal/errors"

	"github.com/gin-gonic/gin"
)

// GetUserCredits returns the status of every credit owned by a user:
// repaid credits with their realized payment total, outstanding ones with
// overdue days and the body/interest payment breakdown.
func (h *Handler) GetUserCredits(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("user_id", "user_id must be a positive integer"))
		return
	}

	ctx := c.Request.Context()
	statuses, err := h.CreditService.UserCredits(ctx, uint(userID))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}
