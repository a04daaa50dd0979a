package channel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/models"
	"github.com/example/chat-dispatch/internal/recipient"
	"github.com/example/chat-dispatch/internal/transport"
)

// Facebook delivers to username recipients only.
type Facebook struct {
	base
}

// NewFacebook constructs the Facebook channel.
func NewFacebook(tr transport.Transport, logger zerolog.Logger) (*Facebook, error) {
	b, err := newBase(NameFacebook, tr, logger)
	if err != nil {
		return nil, err
	}
	return &Facebook{base: b}, nil
}

// Name implements Channel.
func (c *Facebook) Name() string { return NameFacebook }

// Send implements Channel.
func (c *Facebook) Send(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error) {
	if err := recipient.ValidateUsername(to); err != nil {
		return nil, err
	}
	return c.deliver(ctx, msg, to)
}
