package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/sefazor/subflow-backend/internal/controller"
	"github.com/sefazor/subflow-backend/internal/models"
	"github.com/sefazor/subflow-backend/pkg/utils"
)

type SubscriptionHandler struct {
	subscriptionController *controller.SubscriptionController
	validator              *utils.Validator
	logger                 *zap.Logger
}

func NewSubscriptionHandler(subscriptionController *controller.SubscriptionController, validator *utils.Validator, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionController: subscriptionController,
		validator:              validator,
		logger:                 logger,
	}
}

func (h *SubscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	var req models.SubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: err.Error(),
		})
	}

	resp, err := h.subscriptionController.CreateCheckoutSession(&req)
	if err != nil {
		h.logger.Warn("checkout session creation failed",
			zap.String("subscription_type", req.SubscriptionType),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: checkoutErrorDetail(err),
		})
	}

	return c.JSON(resp)
}

// Stripe hataları provider mesajıyla, kalanlar generic mesajla döner
func checkoutErrorDetail(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return "Stripe error: " + stripeErr.Msg
	}
	return "An error occurred: " + err.Error()
}
