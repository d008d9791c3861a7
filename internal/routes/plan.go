package routes

import (
	"fmt"
	"net/http"
	"strings"

	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/logger"
	"CreditCtrl/internal/upload"

	"github.com/gin-gonic/gin"
)

// UploadPlans imports a month-plan spreadsheet. The batch is all-or-nothing:
// any failing row rejects the whole upload with the full list of row errors.
func (h *Handler) UploadPlans(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("file", "file is required"))
		return
	}
	defer file.Close()

	name := strings.ToLower(header.Filename)
	if !strings.HasSuffix(name, ".xls") && !strings.HasSuffix(name, ".xlsx") {
		h.respondError(c, appErrors.NewValidationError("file", "file must be an Excel file (.xls, .xlsx)"))
		return
	}

	rows, err := upload.DecodeXLSX(file)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	inserted, err := h.PlanService.Import(ctx, rows)
	if err != nil {
		h.respondError(c, err)
		return
	}

	logger.Info().Int("inserted", inserted).Str("file", header.Filename).Msg("plans imported")
	c.JSON(http.StatusOK, gin.H{
		"inserted": inserted,
		"message":  fmt.Sprintf("successfully inserted %d plans", inserted),
	})
}
