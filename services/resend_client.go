package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey   string
	from     string
	endpoint string
	http     *http.Client
}

// EmailAttachment is a file sent along with an e-mail.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// Email is one outgoing message.
type Email struct {
	To          string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []EmailAttachment
}

// NewResendClient creates a new Resend client. Without RESEND_API_KEY the
// client is disabled and Send only logs.
func NewResendClient() *ResendClient {
	apiKey := config.GetEnv("RESEND_API_KEY", "")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, e-mails will be logged only")
	}

	return &ResendClient{
		apiKey:   apiKey,
		from:     config.GetEnv("RESEND_FROM_EMAIL", "Emdad Export <noreply@emdad-export.com>"),
		endpoint: resendEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether the client can actually deliver mail.
func (r *ResendClient) Enabled() bool {
	return r.apiKey != ""
}

// Send delivers one e-mail.
func (r *ResendClient) Send(ctx context.Context, email Email) error {
	if !r.Enabled() {
		log.Printf("[resend] disabled, skipping %q to %s", email.Subject, email.To)
		return nil
	}

	payload := map[string]any{
		"from":    r.from,
		"to":      email.To,
		"subject": email.Subject,
		"html":    email.HTML,
	}
	if email.ReplyTo != "" {
		payload["reply_to"] = email.ReplyTo
	}
	if len(email.Attachments) > 0 {
		attachments := make([]map[string]any, 0, len(email.Attachments))
		for _, a := range email.Attachments {
			attachments = append(attachments, map[string]any{
				"filename": a.Filename,
				"content":  base64.StdEncoding.EncodeToString(a.Content),
			})
		}
		payload["attachments"] = attachments
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] %q sent to %s", email.Subject, email.To)
	return nil
}
