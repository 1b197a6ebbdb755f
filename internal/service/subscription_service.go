package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/sefazor/subflow-backend/internal/config"
	"github.com/sefazor/subflow-backend/internal/models"
)

// Custom fiyatlar tek para biriminde açılır
const checkoutCurrency = "eur"

var ErrInvalidSubscriptionType = errors.New("Invalid subscription type. Must be 'standard' or 'custom'")

type PaymentGateway interface {
	FindPriceByAmount(productID string, amountCents int64, currency string) (string, error)
	CreatePrice(productID string, amountCents int64, currency string) (string, error)
	CreateCheckoutSession(userEmail string, priceID string, mode string, metadata map[string]string) (*stripe.CheckoutSession, error)
}

type PurchaseStore interface {
	Create(purchase *models.SubscriptionPurchase) error
	GetBySessionID(sessionID string) (*models.SubscriptionPurchase, error)
	Update(purchase *models.SubscriptionPurchase) error
}

type SubscriptionService struct {
	gateway      PaymentGateway
	purchaseRepo PurchaseStore
	stripeCfg    config.StripeConfig
	logger       *zap.Logger
}

func NewSubscriptionService(gateway PaymentGateway, purchaseRepo PurchaseStore, stripeCfg config.StripeConfig, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		gateway:      gateway,
		purchaseRepo: purchaseRepo,
		stripeCfg:    stripeCfg,
		logger:       logger,
	}
}

type resolvedPrice struct {
	priceID     string
	mode        string
	amountCents int64
	currency    string
}

func (s *SubscriptionService) CreateCheckoutSession(req *models.SubscriptionRequest) (*models.CheckoutSessionResponse, error) {
	resolved, err := s.resolvePrice(req)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.CreateCheckoutSession(
		req.UserEmail,
		resolved.priceID,
		resolved.mode,
		map[string]string{
			"user_email": req.UserEmail,
		},
	)
	if err != nil {
		return nil, err
	}

	// Purchase kaydı oluştur
	purchase := &models.SubscriptionPurchase{
		UserEmail:        req.UserEmail,
		SubscriptionType: req.SubscriptionType,
		StripePriceID:    resolved.priceID,
		AmountCents:      resolved.amountCents,
		Currency:         resolved.currency,
		Mode:             resolved.mode,
		StripeSessionID:  session.ID,
		Status:           models.PurchaseStatusPending,
	}
	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	s.logger.Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.String("subscription_type", req.SubscriptionType),
		zap.String("mode", resolved.mode),
	)

	return &models.CheckoutSessionResponse{URL: session.URL}, nil
}

func (s *SubscriptionService) resolvePrice(req *models.SubscriptionRequest) (*resolvedPrice, error) {
	switch req.SubscriptionType {
	case "standard":
		return &resolvedPrice{
			priceID: s.stripeCfg.StandardPriceID,
			mode:    string(stripe.CheckoutSessionModeSubscription),
		}, nil

	case "custom":
		// Stripe fiyatı minor unit (cent) olarak bekler
		amountCents := req.PriceOrDefault().Mul(decimal.NewFromInt(100)).IntPart()

		priceID, err := s.gateway.FindPriceByAmount(s.stripeCfg.CustomProductID, amountCents, checkoutCurrency)
		if err != nil {
			return nil, err
		}
		if priceID == "" {
			priceID, err = s.gateway.CreatePrice(s.stripeCfg.CustomProductID, amountCents, checkoutCurrency)
			if err != nil {
				return nil, err
			}
			s.logger.Info("created new custom price",
				zap.String("price_id", priceID),
				zap.Int64("amount_cents", amountCents),
			)
		}

		return &resolvedPrice{
			priceID:     priceID,
			mode:        string(stripe.CheckoutSessionModePayment),
			amountCents: amountCents,
			currency:    checkoutCurrency,
		}, nil

	default:
		return nil, ErrInvalidSubscriptionType
	}
}
