package infrastructure

import (
	"CreditCtrl/config"
	"CreditCtrl/internal/domain/credit"
	"CreditCtrl/internal/domain/dictionary"
	"CreditCtrl/internal/domain/payment"
	"CreditCtrl/internal/domain/plan"
	"CreditCtrl/internal/domain/user"
	"CreditCtrl/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("failed to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("failed to obtain database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	if err := seedDictionaries(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	entities := []interface{}{
		&user.User{},
		&dictionary.Dictionary{},
		&credit.Credit{},
		&payment.Payment{},
		&plan.Plan{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().Err(err).Msg("failed to migrate entity")
			return err
		}
	}

	logger.Info().Msg("migrations applied")
	return nil
}

// seedDictionaries inserts the reference categories once, on an empty table.
// Plans and payments reference these rows by id, so they must exist before
// any import or dataset load.
func seedDictionaries(db *gorm.DB) error {
	var count int64
	if err := db.Model(&dictionary.Dictionary{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := []dictionary.Dictionary{
		{ID: 1, Name: dictionary.PaymentTypeBody},
		{ID: 2, Name: dictionary.PaymentTypePercent},
		{ID: 3, Name: dictionary.CategoryIssuance},
		{ID: 4, Name: dictionary.CategoryCollection},
	}
	if err := db.Create(&rows).Error; err != nil {
		logger.Error().Err(err).Msg("failed to seed dictionaries")
		return err
	}

	logger.Info().Int("rows", len(rows)).Msg("seeded dictionary reference data")
	return nil
}
