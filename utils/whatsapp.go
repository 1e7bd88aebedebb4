package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"time"
)

var whatsappClient = &http.Client{Timeout: 10 * time.Second}

var nonPhoneChars = regexp.MustCompile(`[^0-9+]`)

// NormalizePhone strips formatting so numbers compare and send cleanly.
func NormalizePhone(phone string) string {
	return nonPhoneChars.ReplaceAllString(phone, "")
}

type whatsappText struct {
	Body string `json:"body"`
}

type whatsappPayload struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsappText `json:"text"`
}

// SendWhatsAppMessage posts a text message through a WhatsApp Cloud
// API-compatible endpoint. When the API is not configured it logs a mock
// send, mirroring the SMTP dev fallback.
func SendWhatsAppMessage(phone, message string) error {
	apiURL := os.Getenv("WHATSAPP_API_URL")
	token := os.Getenv("WHATSAPP_API_TOKEN")

	phone = NormalizePhone(phone)
	if phone == "" {
		return fmt.Errorf("empty recipient phone number")
	}

	if apiURL == "" || token == "" {
		log.Printf("[MOCK WHATSAPP] to:%s message:%q", phone, message)
		return nil
	}

	payload := whatsappPayload{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
		Text:             whatsappText{Body: message},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode whatsapp payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := whatsappClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("whatsapp API returned %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
