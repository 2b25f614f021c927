package channel

import (
	"context"

	"github.com/janixware/site-backend/internal/modules/inquiry/domain"
)

// Channel is one best-effort delivery path for a composed inquiry
// notification. A failing Send never affects the caller-visible result of a
// submission; the service logs it and moves on.
type Channel interface {
	Name() string
	Send(ctx context.Context, n *domain.Notification) error
}
