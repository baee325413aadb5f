package repository

import (
	"errors"

	"supplierhub/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *DefaultAccountRepository {
	return &DefaultAccountRepository{db: db}
}

func (r *DefaultAccountRepository) FindBySupplierID(supplierID string) (*entity.SupplierAccount, error) {
	var account entity.SupplierAccount
	err := r.db.Where("supplier_id = ?", supplierID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *DefaultAccountRepository) ExistsByEmail(email string) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM supplier_accounts WHERE email = ?)", email).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *DefaultAccountRepository) Save(account *entity.SupplierAccount) error {
	return r.db.Save(account).Error
}
