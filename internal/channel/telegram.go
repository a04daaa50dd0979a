package channel

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/models"
	"github.com/example/chat-dispatch/internal/recipient"
	"github.com/example/chat-dispatch/internal/transport"
)

// Telegram accepts either a phone number or a username and picks the
// validation policy from the recipient's shape.
type Telegram struct {
	base
}

// NewTelegram constructs the Telegram channel.
func NewTelegram(tr transport.Transport, logger zerolog.Logger) (*Telegram, error) {
	b, err := newBase(NameTelegram, tr, logger)
	if err != nil {
		return nil, err
	}
	return &Telegram{base: b}, nil
}

// Name implements Channel.
func (c *Telegram) Name() string { return NameTelegram }

// Send implements Channel.
func (c *Telegram) Send(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error) {
	if looksLikeUsername(to) {
		if err := recipient.ValidateUsername(to); err != nil {
			return nil, err
		}
	} else {
		if err := recipient.ValidatePhone(to); err != nil {
			return nil, err
		}
	}
	return c.deliver(ctx, msg, to)
}

// looksLikeUsername decides which policy validates a Telegram recipient: a
// leading "@", or any non-digit content after stripping "+", means username.
// All-digit strings always take the phone path, even when they are too short
// or too long to pass phone validation.
func looksLikeUsername(to string) bool {
	r := strings.TrimSpace(to)
	if strings.HasPrefix(r, "@") {
		return true
	}
	return !strings.HasPrefix(r, "+") && !recipient.AllDigits(strings.ReplaceAll(r, "+", ""))
}
