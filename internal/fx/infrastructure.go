package fx

import (
	"CreditCtrl/config"
	"CreditCtrl/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newDictionaryRepository,
		newCreditRepository,
		newPaymentRepository,
		newPlanRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDB(cfg)
}

func newDictionaryRepository(db *gorm.DB) *infrastructure.DictionaryRepository {
	return &infrastructure.DictionaryRepository{DB: db}
}

func newCreditRepository(db *gorm.DB) *infrastructure.CreditRepository {
	return &infrastructure.CreditRepository{DB: db}
}

func newPaymentRepository(db *gorm.DB) *infrastructure.PaymentRepository {
	return &infrastructure.PaymentRepository{DB: db}
}

func newPlanRepository(db *gorm.DB) *infrastructure.PlanRepository {
	return &infrastructure.PlanRepository{DB: db}
}
