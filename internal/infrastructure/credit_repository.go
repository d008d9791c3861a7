package infrastructure

import (
	"context"
	"time"

	"CreditCtrl/internal/domain/credit"
	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/pkg"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreditRepository struct {
	DB *gorm.DB
}

var _ credit.Repository = (*CreditRepository)(nil)

func (r *CreditRepository) GetByUserID(ctx context.Context, userID uint) ([]*credit.Credit, error) {
	var credits []*credit.Credit
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&credits).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return credits, nil
}

func (r *CreditRepository) SumIssuedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&credit.Credit{}).
		Where("issuance_date >= ? AND issuance_date <= ?", from, to).
		Select("COALESCE(SUM(body), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func (r *CreditRepository) SumIssuedInMonth(ctx context.Context, period time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&credit.Credit{}).
		Where("issuance_date >= ? AND issuance_date < ?", period, pkg.NextMonth(period)).
		Select("COALESCE(SUM(body), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func (r *CreditRepository) CountIssuedInMonth(ctx context.Context, period time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&credit.Credit{}).
		Where("issuance_date >= ? AND issuance_date < ?", period, pkg.NextMonth(period)).
		Count(&count).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}
