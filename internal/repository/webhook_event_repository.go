package repository

import (
	"github.com/sefazor/subflow-backend/internal/models"
	"gorm.io/gorm"
)

type WebhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{
		db: db,
	}
}

func (r *WebhookEventRepository) Create(event *models.StripeWebhookEvent) error {
	return r.db.Create(event).Error
}

func (r *WebhookEventRepository) ExistsByEventID(eventID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.StripeWebhookEvent{}).
		Where("stripe_event_id = ?", eventID).
		Count(&count).Error
	return count > 0, err
}
