package plan

import (
	"context"
	"time"
)

type Repository interface {
	// ExistsByPeriodAndCategory reports whether a committed plan already
	// occupies the (period, category) slot.
	ExistsByPeriodAndCategory(ctx context.Context, period time.Time, categoryID uint) (bool, error)
	// CreateBatch inserts every plan inside one transaction; a mid-write
	// failure rolls the whole batch back.
	CreateBatch(ctx context.Context, plans []*Plan) error
	// GetByMonth returns every plan whose period equals the given first-of-
	// month date, in any cardinality.
	GetByMonth(ctx context.Context, period time.Time) ([]*Plan, error)
	// GetByYear returns plans with period in [Jan 1, Dec 1] of the year,
	// ordered by period.
	GetByYear(ctx context.Context, year int) ([]*Plan, error)
}
