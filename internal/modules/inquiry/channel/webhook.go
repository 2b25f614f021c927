package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/samber/oops"

	"github.com/janixware/site-backend/internal/modules/inquiry/domain"
)

// DefaultWebhookTimeout bounds the single relay attempt per submission.
const DefaultWebhookTimeout = 10 * time.Second

// WebhookChannel forwards the notification as a JSON POST to a configured
// relay endpoint. One attempt per submission, no retries.
type WebhookChannel struct {
	url    string
	client *http.Client
}

func NewWebhookChannel(url string, timeout time.Duration) *WebhookChannel {
	return &WebhookChannel{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *WebhookChannel) Name() string {
	return "webhook"
}

type webhookPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
	Text    string `json:"text"`
}

func (c *WebhookChannel) Send(ctx context.Context, n *domain.Notification) error {
	body, err := json.Marshal(webhookPayload{
		Name:    n.Inquiry.Name,
		Email:   n.Inquiry.Email,
		Company: n.Inquiry.CompanyOrDefault(),
		Message: n.Inquiry.Message,
		Text:    n.TextBody,
	})
	if err != nil {
		return oops.With("channel", c.Name()).Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return oops.With("channel", c.Name(), "url", c.url).Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return oops.With("channel", c.Name(), "url", c.url).Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return oops.With("channel", c.Name(), "url", c.url, "status", resp.StatusCode).
			Errorf("webhook relay rejected notification")
	}
	return nil
}
