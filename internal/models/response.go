package models

// Hata response'u, detail alanıyla döner
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Webhook acknowledgment response'u
type WebhookAck struct {
	Success bool `json:"success"`
}
