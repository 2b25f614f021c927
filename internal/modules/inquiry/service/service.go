package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strings"

	"github.com/janixware/site-backend/internal/modules/inquiry/channel"
	"github.com/janixware/site-backend/internal/modules/inquiry/domain"
)

const successMessage = "Your message has been sent successfully! We'll get back to you soon."

// Service validates contact submissions, composes the notification, and
// pushes it through every configured delivery channel. Channels are
// best-effort: once validation passes, the submission is accepted no matter
// what delivery does.
type Service struct {
	whatsAppPhone string
	channels      []channel.Channel
	logger        *slog.Logger
}

// New creates a new inquiry service
func New(whatsAppPhone string, channels ...channel.Channel) *Service {
	return &Service{
		whatsAppPhone: whatsAppPhone,
		channels:      channels,
		logger:        slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Submit processes one contact form submission. The only error it returns is
// a validation error; every delivery failure is logged and swallowed, and the
// WhatsApp deep link is returned regardless so the visitor always has a
// working contact path.
func (s *Service) Submit(ctx context.Context, inq *domain.Inquiry) (*domain.Result, error) {
	if err := inq.Validate(); err != nil {
		return nil, err
	}

	n := Compose(inq)

	for _, ch := range s.channels {
		if err := ch.Send(ctx, n); err != nil {
			s.logger.Error("Delivery channel failed", "channel", ch.Name(), "error", err)
		}
	}

	return &domain.Result{
		Success:     true,
		Message:     successMessage,
		WhatsAppURL: s.WhatsAppURL(inq),
	}, nil
}

// Compose renders the canonical plain-text and HTML bodies of an inquiry.
func Compose(inq *domain.Inquiry) *domain.Notification {
	text := fmt.Sprintf(`New Contact Form Submission from Janixware Website

Name: %s
Email: %s
Company: %s

Message:
%s

---
This message was sent from the Janixware contact form.`,
		inq.Name, inq.Email, inq.CompanyOrDefault(), inq.Message)

	htmlBody := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">New Contact Form Submission</h2>
  <div style="background: #f5f7fb; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Company:</strong> %s</p>
  </div>
  <div style="background: #ffffff; padding: 20px; border-radius: 8px; border: 1px solid #e2e8f0;">
    <h3 style="color: #1e40af;">Message:</h3>
    <p style="white-space: pre-wrap; color: #475569;">%s</p>
  </div>
</div>`,
		html.EscapeString(inq.Name),
		html.EscapeString(inq.Email),
		html.EscapeString(inq.CompanyOrDefault()),
		html.EscapeString(inq.Message))

	return &domain.Notification{
		Inquiry:  inq,
		Subject:  fmt.Sprintf("New Contact Form Submission from %s", inq.Name),
		TextBody: text,
		HTMLBody: htmlBody,
	}
}

// WhatsAppURL builds the wa.me deep link pre-filled with the submission, the
// fallback contact path handed back to the browser.
func (s *Service) WhatsAppURL(inq *domain.Inquiry) string {
	message := fmt.Sprintf("New Contact Form Submission\n\nName: %s\nEmail: %s\nCompany: %s\n\nMessage:\n%s",
		inq.Name, inq.Email, inq.CompanyOrDefault(), inq.Message)
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppPhone, encodeComponent(message))
}

// encodeComponent mirrors JS encodeURIComponent: query escaping with literal
// spaces as %20, so WhatsApp renders them verbatim.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
