// Package transport implements the delivery side effect channels hand their
// reports to. The console transport stands in for a real provider
// integration; the mock transport supports deterministic tests.
package transport

import (
	"context"

	"github.com/example/chat-dispatch/internal/models"
)

// Transport performs the opaque delivery effect for a composed report.
// Implementations must not mutate the report.
type Transport interface {
	Deliver(ctx context.Context, report *models.DeliveryReport) error
}
