package infrastructure

import (
	"context"
	"errors"

	"CreditCtrl/internal/domain/dictionary"
	appErrors "CreditCtrl/internal/errors"

	"gorm.io/gorm"
)

type DictionaryRepository struct {
	DB *gorm.DB
}

var _ dictionary.Repository = (*DictionaryRepository)(nil)

func (r *DictionaryRepository) IDByName(ctx context.Context, name string) (uint, error) {
	var row dictionary.Dictionary
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return 0, appErrors.NewDatabaseError(err)
	}
	return row.ID, nil
}

func (r *DictionaryRepository) NameByID(ctx context.Context, id uint) (string, error) {
	var row dictionary.Dictionary
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", appErrors.ErrCategoryNotFound.WithError(err)
		}
		return "", appErrors.NewDatabaseError(err)
	}
	return row.Name, nil
}
