package channel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/models"
	"github.com/example/chat-dispatch/internal/recipient"
	"github.com/example/chat-dispatch/internal/transport"
)

// Instagram delivers to username recipients only.
type Instagram struct {
	base
}

// NewInstagram constructs the Instagram channel.
func NewInstagram(tr transport.Transport, logger zerolog.Logger) (*Instagram, error) {
	b, err := newBase(NameInstagram, tr, logger)
	if err != nil {
		return nil, err
	}
	return &Instagram{base: b}, nil
}

// Name implements Channel.
func (c *Instagram) Name() string { return NameInstagram }

// Send implements Channel.
func (c *Instagram) Send(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error) {
	if err := recipient.ValidateUsername(to); err != nil {
		return nil, err
	}
	return c.deliver(ctx, msg, to)
}
