// Package channel implements the delivery targets. Each channel composes the
// validation policies its addressing scheme requires, derives a delivery
// report from the message's metadata view and hands the report to a
// transport.
package channel

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/models"
	"github.com/example/chat-dispatch/internal/transport"
)

// Channel names.
const (
	NameWhatsApp  = "whatsapp"
	NameTelegram  = "telegram"
	NameFacebook  = "facebook"
	NameInstagram = "instagram"
)

// ErrUnsupportedMessage signals a channel/message combination the channel
// cannot deliver. None of the built-in channels return it today; it is
// reserved for future incompatibilities and classified by dispatch.
var ErrUnsupportedMessage = errors.New("unsupported message")

// Channel is a delivery target with its own recipient-format rules.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error)
}

// base carries the collaborators shared by every channel. Channels hold no
// per-message state and are reusable across calls.
type base struct {
	name      string
	logger    zerolog.Logger
	transport transport.Transport
}

func newBase(name string, tr transport.Transport, logger zerolog.Logger) (base, error) {
	if tr == nil {
		return base{}, fmt.Errorf("%s channel: transport dependency is required", name)
	}
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}
	return base{name: name, logger: logger, transport: tr}, nil
}

// deliver derives the report from the message metadata and hands it to the
// transport. Validation must already have passed.
func (b *base) deliver(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error) {
	report := buildReport(b.name, msg, to)

	if err := b.transport.Deliver(ctx, report); err != nil {
		b.logger.Warn().
			Str("channel", b.name).
			Str("message_id", report.MessageID).
			Err(err).
			Msg("delivery failed")
		return nil, fmt.Errorf("%s channel: deliver: %w", b.name, err)
	}

	b.logger.Debug().
		Str("channel", b.name).
		Str("message_id", report.MessageID).
		Str("message_type", report.MessageType).
		Msg("delivery succeeded")
	return report, nil
}

// buildReport flattens the metadata view into a delivery report. Only the
// metadata map decides what appears; channels never inspect concrete message
// types.
func buildReport(channelName string, msg models.Message, to string) *models.DeliveryReport {
	meta := msg.Metadata()

	report := &models.DeliveryReport{
		Channel:     channelName,
		Recipient:   to,
		MessageID:   msg.ID(),
		MessageType: metaString(meta, "type"),
		Text:        metaString(meta, "text"),
		SentAt:      msg.SentAt(),
	}
	if report.MessageType != models.TypeText {
		report.FilePath = metaString(meta, "file_path")
		report.Format = metaString(meta, "format")
	}
	return report
}

func metaString(meta map[string]any, key string) string {
	if val, ok := meta[key].(string); ok {
		return val
	}
	return ""
}
