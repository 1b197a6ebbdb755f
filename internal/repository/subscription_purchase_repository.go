package repository

import (
	"github.com/sefazor/subflow-backend/internal/models"
	"gorm.io/gorm"
)

type SubscriptionPurchaseRepository struct {
	db *gorm.DB
}

func NewSubscriptionPurchaseRepository(db *gorm.DB) *SubscriptionPurchaseRepository {
	return &SubscriptionPurchaseRepository{
		db: db,
	}
}

func (r *SubscriptionPurchaseRepository) Create(purchase *models.SubscriptionPurchase) error {
	return r.db.Create(purchase).Error
}

func (r *SubscriptionPurchaseRepository) GetBySessionID(sessionID string) (*models.SubscriptionPurchase, error) {
	var purchase models.SubscriptionPurchase
	err := r.db.Where("stripe_session_id = ?", sessionID).First(&purchase).Error
	return &purchase, err
}

func (r *SubscriptionPurchaseRepository) Update(purchase *models.SubscriptionPurchase) error {
	return r.db.Save(purchase).Error
}
