package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"CreditCtrl/internal/domain/dictionary"
	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/logger"
	"CreditCtrl/internal/pkg"

	"github.com/shopspring/decimal"
)

// Layouts accepted for the period cell. Spreadsheet cells arrive as strings
// and may carry a time-of-day component, which is discarded on acceptance.
var periodLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"02.01.2006",
	"1-2-06",
	"1-2-06 15:04",
}

// Service validates uploaded plan rows and commits clean batches. Every check
// failure contributes one message keyed by the row's 1-based position in the
// original file; a batch with any failing row is rejected in full.
type Service struct {
	Repository   Repository
	Dictionaries *dictionary.Service
}

func NewService(repo Repository, dictionaries *dictionary.Service) *Service {
	return &Service{Repository: repo, Dictionaries: dictionaries}
}

// Import runs the per-row validation chain over rows and, only when every row
// passed, commits the whole batch atomically. It returns the number of
// committed plans.
func (s *Service) Import(ctx context.Context, rows []ImportRow) (int, error) {
	var rowErrors []string
	toInsert := make([]*Plan, 0, len(rows))

	for i, row := range rows {
		line := i + 1

		period, err := parsePeriod(row.Period)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid date format", line))
			continue
		}

		if period.Day() != 1 {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: date must be the first of the month", line))
			continue
		}

		sumStr := strings.TrimSpace(row.Sum)
		if sumStr == "" || strings.EqualFold(sumStr, "nan") {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: sum must not be empty", line))
			continue
		}

		sum, err := decimal.NewFromString(sumStr)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid sum value", line))
			continue
		}
		// Banker's rounding to two digits, matching the stored precision.
		sum = sum.RoundBank(2)

		name := strings.TrimSpace(row.CategoryName)
		categoryID, err := s.Dictionaries.IDByName(ctx, name)
		if err != nil {
			if errors.Is(err, appErrors.ErrCategoryNotFound) {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: category '%s' not found", line, name))
				continue
			}
			return 0, err
		}

		exists, err := s.Repository.ExistsByPeriodAndCategory(ctx, period, categoryID)
		if err != nil {
			return 0, err
		}
		if exists {
			rowErrors = append(rowErrors, fmt.Sprintf(
				"row %d: plan for %s and category '%s' already exists",
				line, period.Format(time.DateOnly), name,
			))
			continue
		}

		toInsert = append(toInsert, &Plan{
			Period:     period,
			Sum:        sum,
			CategoryID: categoryID,
		})
	}

	if len(rowErrors) > 0 {
		return 0, appErrors.ErrValidation.WithDetails(map[string]interface{}{
			"errors": rowErrors,
		})
	}

	if err := s.Repository.CreateBatch(ctx, toInsert); err != nil {
		logger.Error().Err(err).Int("rows", len(toInsert)).Msg("plan batch insert failed")
		return 0, err
	}

	return len(toInsert), nil
}

func parsePeriod(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return pkg.DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
