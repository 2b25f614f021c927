package errors

import "errors"

var (
	// ErrMissingRequiredFields is returned when a contact submission omits
	// name, email, or message. It maps to a 400 at the HTTP boundary.
	ErrMissingRequiredFields = errors.New("name, email, and message are required")

	// ErrAllSourcesFailed is returned when every configured feed source
	// failed to fetch or parse. Partial failure is not an error; only a
	// completely empty fetch round is.
	ErrAllSourcesFailed = errors.New("all feed sources failed")

	ErrMissingWhatsAppPhone = errors.New("whatsapp_phone is required")
	ErrNoFeedSources        = errors.New("at least one feed source is required")
)
