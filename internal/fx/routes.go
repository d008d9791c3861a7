package fx

import (
	"time"

	"CreditCtrl/internal/domain/credit"
	"CreditCtrl/internal/domain/performance"
	"CreditCtrl/internal/domain/plan"
	"CreditCtrl/internal/middleware"
	"CreditCtrl/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule provides handlers and rate limiters.
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	planSvc *plan.Service,
	performanceSvc *performance.Service,
	creditSvc *credit.Service,
) *routes.Handler {
	return &routes.Handler{
		PlanService:        planSvc,
		PerformanceService: performanceSvc,
		CreditService:      creditSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
