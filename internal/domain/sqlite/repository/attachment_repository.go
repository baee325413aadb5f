package repository

import (
	"errors"

	"supplierhub/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *DefaultAttachmentRepository {
	return &DefaultAttachmentRepository{db: db}
}

func (r *DefaultAttachmentRepository) FindByID(id int) (*entity.Attachment, error) {
	var att entity.Attachment
	err := r.db.First(&att, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *DefaultAttachmentRepository) FindBySupplierID(supplierID string) ([]*entity.Attachment, error) {
	var atts []*entity.Attachment
	err := r.db.Where("supplier_id = ?", supplierID).Find(&atts).Error
	if err != nil {
		return nil, err
	}
	return atts, nil
}

func (r *DefaultAttachmentRepository) Save(att *entity.Attachment) error {
	return r.db.Save(att).Error
}

func (r *DefaultAttachmentRepository) DeleteBySupplierID(supplierID string) error {
	return r.db.Where("supplier_id = ?", supplierID).Delete(&entity.Attachment{}).Error
}
