package infrastructure

import (
	"context"
	"time"

	"CreditCtrl/internal/domain/payment"
	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/pkg"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

var _ payment.Repository = (*PaymentRepository)(nil)

func (r *PaymentRepository) SumByCredit(ctx context.Context, creditID uint) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&payment.Payment{}).
		Where("credit_id = ?", creditID).
		Select("COALESCE(SUM(sum), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func (r *PaymentRepository) SumByCreditAndType(ctx context.Context, creditID, typeID uint) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&payment.Payment{}).
		Where("credit_id = ? AND type_id = ?", creditID, typeID).
		Select("COALESCE(SUM(sum), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func (r *PaymentRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&payment.Payment{}).
		Where("payment_date >= ? AND payment_date <= ?", from, to).
		Select("COALESCE(SUM(sum), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func (r *PaymentRepository) SumPaidInMonth(ctx context.Context, period time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.WithContext(ctx).Model(&payment.Payment{}).
		Where("payment_date >= ? AND payment_date < ?", period, pkg.NextMonth(period)).
		Select("COALESCE(SUM(sum), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func (r *PaymentRepository) CountPaidInMonth(ctx context.Context, period time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&payment.Payment{}).
		Where("payment_date >= ? AND payment_date < ?", period, pkg.NextMonth(period)).
		Count(&count).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}
