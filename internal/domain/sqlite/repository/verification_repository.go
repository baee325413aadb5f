package repository

import (
	"errors"

	"supplierhub/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultVerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *DefaultVerificationRepository {
	return &DefaultVerificationRepository{db: db}
}

func (r *DefaultVerificationRepository) Find(supplierID string, field entity.VerifyField) (*entity.VerificationCheck, error) {
	var check entity.VerificationCheck
	err := r.db.
		Where("supplier_id = ? AND field = ?", supplierID, field).
		First(&check).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &check, nil
}

func (r *DefaultVerificationRepository) FindBySupplierID(supplierID string) ([]*entity.VerificationCheck, error) {
	var checks []*entity.VerificationCheck
	err := r.db.Where("supplier_id = ?", supplierID).Find(&checks).Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *DefaultVerificationRepository) Save(check *entity.VerificationCheck) error {
	return r.db.Save(check).Error
}

func (r *DefaultVerificationRepository) DeleteBySupplierID(supplierID string) error {
	return r.db.Where("supplier_id = ?", supplierID).Delete(&entity.VerificationCheck{}).Error
}
