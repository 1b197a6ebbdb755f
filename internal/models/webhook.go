package models

import "time"

// İşlenen Stripe webhook eventlerinin kaydı, StripeEventID replay dedup anahtarı
type StripeWebhookEvent struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	StripeEventID string    `json:"stripe_event_id" gorm:"unique;not null"`
	EventType     string    `json:"event_type" gorm:"not null"`
	CustomerEmail string    `json:"customer_email"`
	Payload       string    `json:"payload" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}
