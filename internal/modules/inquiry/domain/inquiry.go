package domain

import (
	"strings"

	sharederrors "github.com/janixware/site-backend/internal/shared/errors"
)

// Inquiry is a visitor-submitted contact form payload.
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Validate checks the required fields. Company is optional.
func (i *Inquiry) Validate() error {
	if strings.TrimSpace(i.Name) == "" ||
		strings.TrimSpace(i.Email) == "" ||
		strings.TrimSpace(i.Message) == "" {
		return sharederrors.ErrMissingRequiredFields
	}
	return nil
}

// CompanyOrDefault returns the company name or the fixed placeholder used in
// every composed representation of the submission.
func (i *Inquiry) CompanyOrDefault() string {
	if strings.TrimSpace(i.Company) == "" {
		return "Not provided"
	}
	return i.Company
}

// Notification is the composed, ready-to-deliver form of an inquiry, shared
// by every delivery channel.
type Notification struct {
	Inquiry  *Inquiry
	Subject  string
	TextBody string
	HTMLBody string
}

// Result is the caller-visible outcome of a submission. Success is decided
// by validation alone; delivery channels are best-effort and never change it.
type Result struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}
