package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// SumByCredit totals every payment against a credit, regardless of type.
	SumByCredit(ctx context.Context, creditID uint) (decimal.Decimal, error)
	// SumByCreditAndType totals payments of a single dictionary type against
	// a credit.
	SumByCreditAndType(ctx context.Context, creditID, typeID uint) (decimal.Decimal, error)
	// SumPaidBetween totals payments dated in [from, to], both ends inclusive.
	SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// SumPaidInMonth totals payments dated in [period, next month).
	SumPaidInMonth(ctx context.Context, period time.Time) (decimal.Decimal, error)
	// CountPaidInMonth counts payments dated in [period, next month).
	CountPaidInMonth(ctx context.Context, period time.Time) (int64, error)
}
