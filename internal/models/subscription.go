package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionRequest struct {
	SubscriptionType string           `json:"subscription_type" validate:"required"`
	UserEmail        string           `json:"user_email" validate:"required,email"`
	Price            *decimal.Decimal `json:"price"`
}

// Price gönderilmediğinde 1 kabul edilir
func (r *SubscriptionRequest) PriceOrDefault() decimal.Decimal {
	if r.Price == nil {
		return decimal.NewFromInt(1)
	}
	return *r.Price
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
)

// Oluşturulan checkout sessionları takip etmek için
type SubscriptionPurchase struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserEmail        string    `json:"user_email" gorm:"not null"`
	SubscriptionType string    `json:"subscription_type" gorm:"not null"`
	StripePriceID    string    `json:"stripe_price_id" gorm:"not null"`
	AmountCents      int64     `json:"amount_cents"`
	Currency         string    `json:"currency"`
	Mode             string    `json:"mode" gorm:"not null"`
	StripeSessionID  string    `json:"stripe_session_id" gorm:"unique;not null"`
	Status           string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
