package infrastructure

import (
	"context"
	"time"

	"CreditCtrl/internal/domain/plan"
	appErrors "CreditCtrl/internal/errors"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

var _ plan.Repository = (*PlanRepository)(nil)

func (r *PlanRepository) ExistsByPeriodAndCategory(ctx context.Context, period time.Time, categoryID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&plan.Plan{}).
		Where("period = ? AND category_id = ?", period, categoryID).
		Count(&count).Error
	if err != nil {
		return false, appErrors.NewDatabaseError(err)
	}
	return count > 0, nil
}

// CreateBatch writes the whole batch inside one transaction. Any failure
// rolls every staged row back, so a rejected import leaves no partial state.
func (r *PlanRepository) CreateBatch(ctx context.Context, plans []*plan.Plan) error {
	if len(plans) == 0 {
		return nil
	}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range plans {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *PlanRepository) GetByMonth(ctx context.Context, period time.Time) ([]*plan.Plan, error) {
	var plans []*plan.Plan
	err := r.DB.WithContext(ctx).
		Where("period = ?", period).
		Find(&plans).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return plans, nil
}

func (r *PlanRepository) GetByYear(ctx context.Context, year int) ([]*plan.Plan, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)

	var plans []*plan.Plan
	err := r.DB.WithContext(ctx).
		Where("period >= ? AND period <= ?", from, to).
		Order("period").
		Find(&plans).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return plans, nil
}
