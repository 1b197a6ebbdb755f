package service

import (
	"encoding/json"
	"errors"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sefazor/subflow-backend/internal/models"
)

type WebhookEventStore interface {
	Create(event *models.StripeWebhookEvent) error
	ExistsByEventID(eventID string) (bool, error)
}

type WebhookService struct {
	eventRepo    WebhookEventStore
	purchaseRepo PurchaseStore
	logger       *zap.Logger
}

func NewWebhookService(eventRepo WebhookEventStore, purchaseRepo PurchaseStore, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		eventRepo:    eventRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// Doğrulanmış webhook eventlerini işler. Bilinmeyen tipler hata değildir,
// loglanıp geçilir.
func (s *WebhookService) HandleStripeEvent(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(event)

	default:
		s.logger.Debug("unhandled webhook event type", zap.String("type", string(event.Type)))
		return nil
	}
}

func (s *WebhookService) handleCheckoutCompleted(event *stripe.Event) error {
	// İmza doğrulaması envelope'ta data olduğunu garanti etmez
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return errors.New("event has no data object")
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return err
	}

	s.logger.Info("checkout session completed",
		zap.String("event_id", event.ID),
		zap.String("session_id", session.ID),
		zap.String("customer_email", session.CustomerEmail),
	)

	// Stripe aynı eventi tekrar gönderebilir, event ID dedup anahtarı
	exists, err := s.eventRepo.ExistsByEventID(event.ID)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Info("webhook event already processed", zap.String("event_id", event.ID))
		return nil
	}

	// İlgili purchase kaydı önce tamamlandı olarak işaretlenir, event kaydı
	// en son yazılır. Update hatasında dedup anahtarı oluşmaz ve redelivery
	// eventi tekrar işleyebilir
	purchase, err := s.purchaseRepo.GetBySessionID(session.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		s.logger.Warn("no purchase record for completed session",
			zap.String("session_id", session.ID),
		)
	} else {
		purchase.Status = models.PurchaseStatusCompleted
		if err := s.purchaseRepo.Update(purchase); err != nil {
			return err
		}
	}

	record := &models.StripeWebhookEvent{
		StripeEventID: event.ID,
		EventType:     string(event.Type),
		CustomerEmail: session.CustomerEmail,
		Payload:       string(event.Data.Raw),
	}
	return s.eventRepo.Create(record)
}
