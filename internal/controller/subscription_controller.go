package controller

import (
	"github.com/sefazor/subflow-backend/internal/models"
	"github.com/sefazor/subflow-backend/internal/service"
)

type SubscriptionController struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionController(subscriptionService *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (c *SubscriptionController) CreateCheckoutSession(req *models.SubscriptionRequest) (*models.CheckoutSessionResponse, error) {
	return c.subscriptionService.CreateCheckoutSession(req)
}
