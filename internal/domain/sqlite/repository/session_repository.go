package repository

import (
	"errors"

	"supplierhub/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *DefaultSessionRepository {
	return &DefaultSessionRepository{db: db}
}

func (r *DefaultSessionRepository) FindBySupplierID(supplierID string) (*entity.OnboardingSession, error) {
	var session entity.OnboardingSession
	err := r.db.
		Preload("Distributors").
		Where("supplier_id = ?", supplierID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *DefaultSessionRepository) FindIdleSince(before int64) ([]*entity.OnboardingSession, error) {
	var sessions []*entity.OnboardingSession
	err := r.db.
		Where("updated_at < ? AND submitted = ?", before, false).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *DefaultSessionRepository) Save(session *entity.OnboardingSession) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(session).Error
}

func (r *DefaultSessionRepository) Delete(session *entity.OnboardingSession) error {
	return r.db.Delete(session).Error
}

func (r *DefaultSessionRepository) SaveDistributor(d *entity.AuthorizedDistributor) error {
	return r.db.Save(d).Error
}

func (r *DefaultSessionRepository) DeleteDistributor(d *entity.AuthorizedDistributor) error {
	return r.db.Delete(d).Error
}

func (r *DefaultSessionRepository) DeleteDistributorsBySession(sessionID int) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&entity.AuthorizedDistributor{}).Error
}
