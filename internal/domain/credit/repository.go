package credit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]*Credit, error)
	// SumIssuedBetween totals credit bodies issued in [from, to], both ends
	// inclusive. Months with no issued credits total zero.
	SumIssuedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// SumIssuedInMonth totals credit bodies issued in [period, next month).
	SumIssuedInMonth(ctx context.Context, period time.Time) (decimal.Decimal, error)
	// CountIssuedInMonth counts credits issued in [period, next month).
	CountIssuedInMonth(ctx context.Context, period time.Time) (int64, error)
}
