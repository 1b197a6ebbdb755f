package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/subflow-backend/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test_123")
	t.Setenv("STRIPE_STANDARD_PRICE_ID", "price_standard_123")
	t.Setenv("STRIPE_CUSTOM_PRODUCT_ID", "prod_custom_123")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/subflow")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("CHECKOUT_DOMAIN", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Domain)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.Equal(t, "price_standard_123", cfg.Stripe.StandardPriceID)
	assert.Equal(t, "prod_custom_123", cfg.Stripe.CustomProductID)
}

func TestLoadConfig_RedirectURLs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHECKOUT_DOMAIN", "https://subflow.example.com")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://subflow.example.com/success.html", cfg.SuccessURL())
	assert.Equal(t, "https://subflow.example.com/cancel.html", cfg.CancelURL())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STRIPE_SECRET_KEY", "")

	cfg, err := config.LoadConfig()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.LoadConfig()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
