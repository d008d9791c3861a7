// Package upload decodes uploaded plan spreadsheets into raw rows. All cell
// values are passed through as strings; semantic validation is the import
// validator's job so that every malformed value maps to a row-indexed error.
package upload

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"CreditCtrl/internal/domain/plan"
	appErrors "CreditCtrl/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	columnPeriod   = "period"
	columnSum      = "sum"
	columnCategory = "category_name"
)

// DecodeXLSX reads the first sheet of an xlsx file. The header row must
// contain the period, sum and category_name columns; extra columns are
// ignored. Blank rows are kept so row numbering follows the sheet; they fail
// date validation at their own index.
func DecodeXLSX(r io.Reader) ([]plan.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, appErrors.WrapError(err, "INVALID_FILE", "file could not be read as a spreadsheet", http.StatusBadRequest)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, appErrors.NewAppError("INVALID_FILE", "spreadsheet contains no sheets", http.StatusBadRequest)
	}

	matrix, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, appErrors.WrapError(err, "INVALID_FILE", "file could not be read as a spreadsheet", http.StatusBadRequest)
	}
	if len(matrix) == 0 {
		return nil, missingColumnsError([]string{columnPeriod, columnSum, columnCategory})
	}

	header := matrix[0]
	colPeriod := indexOf(header, columnPeriod)
	colSum := indexOf(header, columnSum)
	colCategory := indexOf(header, columnCategory)

	var missing []string
	if colPeriod == -1 {
		missing = append(missing, columnPeriod)
	}
	if colSum == -1 {
		missing = append(missing, columnSum)
	}
	if colCategory == -1 {
		missing = append(missing, columnCategory)
	}
	if len(missing) > 0 {
		return nil, missingColumnsError(missing)
	}

	rows := make([]plan.ImportRow, 0, len(matrix)-1)
	for i := 1; i < len(matrix); i++ {
		rows = append(rows, plan.ImportRow{
			Period:       safeGet(matrix[i], colPeriod),
			Sum:          safeGet(matrix[i], colSum),
			CategoryName: safeGet(matrix[i], colCategory),
		})
	}

	return rows, nil
}

func missingColumnsError(missing []string) *appErrors.AppError {
	return appErrors.NewAppError(
		"MISSING_COLUMNS",
		fmt.Sprintf("file is missing required columns: %s", strings.Join(missing, ", ")),
		http.StatusBadRequest,
	)
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
