package config

import (
	"fmt"
	"os"
)

type StripeConfig struct {
	SecretKey       string
	WebhookSecret   string
	StandardPriceID string
	CustomProductID string
}

type Config struct {
	Port        string
	Domain      string
	DatabaseURL string
	LogLevel    string
	Stripe      StripeConfig
}

// Checkout redirect adresleri Domain üzerinden kurulur
func (c *Config) SuccessURL() string {
	return c.Domain + "/success.html"
}

func (c *Config) CancelURL() string {
	return c.Domain + "/cancel.html"
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Domain:      getEnv("CHECKOUT_DOMAIN", "http://localhost:8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Stripe.StandardPriceID = os.Getenv("STRIPE_STANDARD_PRICE_ID")
	cfg.Stripe.CustomProductID = os.Getenv("STRIPE_CUSTOM_PRODUCT_ID")

	required := map[string]string{
		"STRIPE_SECRET_KEY":        cfg.Stripe.SecretKey,
		"STRIPE_WEBHOOK_SECRET":    cfg.Stripe.WebhookSecret,
		"STRIPE_STANDARD_PRICE_ID": cfg.Stripe.StandardPriceID,
		"STRIPE_CUSTOM_PRODUCT_ID": cfg.Stripe.CustomProductID,
		"DATABASE_URL":             cfg.DatabaseURL,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s is not set", name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
