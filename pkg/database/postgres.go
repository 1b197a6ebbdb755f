package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sefazor/subflow-backend/internal/models"
)

func NewDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto Migrate
	if err := db.AutoMigrate(
		&models.SubscriptionPurchase{},
		&models.StripeWebhookEvent{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
