package controller

import (
	"github.com/stripe/stripe-go/v74"

	"github.com/sefazor/subflow-backend/internal/service"
)

type WebhookController struct {
	webhookService *service.WebhookService
}

func NewWebhookController(webhookService *service.WebhookService) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
	}
}

func (c *WebhookController) HandleStripeEvent(event *stripe.Event) error {
	return c.webhookService.HandleStripeEvent(event)
}
