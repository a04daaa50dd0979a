package channel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/models"
	"github.com/example/chat-dispatch/internal/recipient"
	"github.com/example/chat-dispatch/internal/transport"
)

// WhatsApp delivers to phone-number recipients only.
type WhatsApp struct {
	base
}

// NewWhatsApp constructs the WhatsApp channel.
func NewWhatsApp(tr transport.Transport, logger zerolog.Logger) (*WhatsApp, error) {
	b, err := newBase(NameWhatsApp, tr, logger)
	if err != nil {
		return nil, err
	}
	return &WhatsApp{base: b}, nil
}

// Name implements Channel.
func (c *WhatsApp) Name() string { return NameWhatsApp }

// Send implements Channel.
func (c *WhatsApp) Send(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error) {
	if err := recipient.ValidatePhone(to); err != nil {
		return nil, err
	}
	return c.deliver(ctx, msg, to)
}
