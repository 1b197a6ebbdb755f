package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/subflow-backend/internal/controller"
	"github.com/sefazor/subflow-backend/internal/models"
	"github.com/sefazor/subflow-backend/pkg/payment"
)

type WebhookHandler struct {
	webhookController *controller.WebhookController
	stripeClient      *payment.StripeClient
	logger            *zap.Logger
}

func NewWebhookHandler(webhookController *controller.WebhookController, stripeClient *payment.StripeClient, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookController: webhookController,
		stripeClient:      stripeClient,
		logger:            logger,
	}
}

func (h *WebhookHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	// İmza raw body üzerinden doğrulanır, body parse edilmeden okunmalı
	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := h.stripeClient.VerifyWebhookEvent(payload, signatureHeader)
	if err != nil {
		h.logger.Warn("webhook verification failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: err.Error(),
		})
	}

	// Doğrulama geçtikten sonra her durumda 200 dönülür, aksi halde
	// Stripe eventi tekrar gönderir
	if err := h.webhookController.HandleStripeEvent(&event); err != nil {
		h.logger.Error("webhook event processing failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
	}

	return c.JSON(models.WebhookAck{Success: true})
}
