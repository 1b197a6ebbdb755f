package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/subflow-backend/pkg/payment"
)

const testSecret = "whsec_test_123"

func newTestClient() *payment.StripeClient {
	return payment.NewStripeClient(
		"sk_test_123",
		testSecret,
		"http://localhost:8000/success.html",
		"http://localhost:8000/cancel.html",
	)
}

func sign(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhookEvent_ValidSignature(t *testing.T) {
	client := newTestClient()
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","customer_email":"a@b.com"}}}`)

	event, err := client.VerifyWebhookEvent(payload, sign(payload, testSecret, time.Now()))

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "checkout.session.completed", string(event.Type))
	assert.JSONEq(t, `{"id":"cs_1","object":"checkout.session","customer_email":"a@b.com"}`, string(event.Data.Raw))
}

func TestVerifyWebhookEvent_WrongSecret(t *testing.T) {
	client := newTestClient()
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{}}}`)

	_, err := client.VerifyWebhookEvent(payload, sign(payload, "whsec_other", time.Now()))

	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestVerifyWebhookEvent_TamperedPayload(t *testing.T) {
	client := newTestClient()
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{}}}`)
	signature := sign(payload, testSecret, time.Now())

	tampered := []byte(`{"id":"evt_1","object":"event","type":"charge.refunded","data":{"object":{}}}`)
	_, err := client.VerifyWebhookEvent(tampered, signature)

	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestVerifyWebhookEvent_MalformedHeader(t *testing.T) {
	client := newTestClient()

	_, err := client.VerifyWebhookEvent([]byte(`{}`), "t=abc,v1=zzz")

	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestVerifyWebhookEvent_EmptyHeader(t *testing.T) {
	client := newTestClient()

	_, err := client.VerifyWebhookEvent([]byte(`{}`), "")

	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestVerifyWebhookEvent_StaleTimestamp(t *testing.T) {
	client := newTestClient()
	payload := []byte(`{"id":"evt_1","object":"event","type":"invoice.paid","data":{"object":{}}}`)

	_, err := client.VerifyWebhookEvent(payload, sign(payload, testSecret, time.Now().Add(-10*time.Minute)))

	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestVerifyWebhookEvent_SignedButNotJSON(t *testing.T) {
	client := newTestClient()
	payload := []byte("plain text body")

	_, err := client.VerifyWebhookEvent(payload, sign(payload, testSecret, time.Now()))

	assert.ErrorIs(t, err, payment.ErrInvalidPayload)
}
