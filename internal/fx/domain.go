package fx

import (
	"CreditCtrl/internal/domain/credit"
	"CreditCtrl/internal/domain/dictionary"
	"CreditCtrl/internal/domain/performance"
	"CreditCtrl/internal/domain/plan"
	"CreditCtrl/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule provides every domain service.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newDictionaryService,
		newPlanService,
		newCreditService,
		newPerformanceService,
	),
)

func newDictionaryService(repo *infrastructure.DictionaryRepository) *dictionary.Service {
	return dictionary.NewService(repo)
}

func newPlanService(
	repo *infrastructure.PlanRepository,
	dictionarySvc *dictionary.Service,
) *plan.Service {
	return plan.NewService(repo, dictionarySvc)
}

func newCreditService(
	repo *infrastructure.CreditRepository,
	paymentRepo *infrastructure.PaymentRepository,
	dictionarySvc *dictionary.Service,
) *credit.Service {
	return credit.NewService(repo, paymentRepo, dictionarySvc)
}

func newPerformanceService(
	planRepo *infrastructure.PlanRepository,
	creditRepo *infrastructure.CreditRepository,
	paymentRepo *infrastructure.PaymentRepository,
	dictionarySvc *dictionary.Service,
) *performance.Service {
	return performance.NewService(planRepo, creditRepo, paymentRepo, dictionarySvc)
}
