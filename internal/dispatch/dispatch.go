// Package dispatch provides the single send entry point. It invokes a
// channel's delivery routine and converts every failure into a reported,
// non-fatal outcome.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/channel"
	"github.com/example/chat-dispatch/internal/models"
	"github.com/example/chat-dispatch/internal/recipient"
)

// FailureKind classifies non-fatal dispatch failures.
type FailureKind string

const (
	// FailureInvalidRecipient is reported when the recipient fails the
	// channel's validation policy.
	FailureInvalidRecipient FailureKind = "invalid_recipient"
	// FailureUnsupportedMessage is reported when a channel rejects a message
	// variant it cannot deliver.
	FailureUnsupportedMessage FailureKind = "unsupported_message"
	// FailureUnexpected is the safety net for unclassified errors.
	FailureUnexpected FailureKind = "unexpected"
)

// Failure carries the classification and detail of a failed dispatch.
type Failure struct {
	Kind   FailureKind `json:"kind"`
	Detail string      `json:"detail"`
}

// Outcome is the tagged result of a dispatch call: either Sent with a report,
// or a Failure.
type Outcome struct {
	Sent    bool                   `json:"sent"`
	Report  *models.DeliveryReport `json:"report,omitempty"`
	Failure *Failure               `json:"failure,omitempty"`
}

// Dispatcher routes messages through channels and reports outcomes.
type Dispatcher struct {
	logger zerolog.Logger
}

// New constructs a Dispatcher.
func New(logger zerolog.Logger) *Dispatcher {
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}
	return &Dispatcher{logger: logger}
}

// Dispatch invokes the channel's send routine. It never returns an error and
// never panics: validation failures, unexpected errors and panics all surface
// as a reported outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, ch channel.Channel, msg models.Message, to string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Str("channel", ch.Name()).
				Interface("panic", r).
				Msg("dispatch recovered from panic")
			outcome = Outcome{Failure: &Failure{
				Kind:   FailureUnexpected,
				Detail: fmt.Sprintf("panic: %v", r),
			}}
		}
	}()

	report, err := ch.Send(ctx, msg, to)
	if err == nil {
		d.logger.Info().
			Str("channel", ch.Name()).
			Str("message_id", report.MessageID).
			Str("message_type", report.MessageType).
			Msg("message sent")
		return Outcome{Sent: true, Report: report}
	}

	kind := classify(err)
	d.logger.Warn().
		Str("channel", ch.Name()).
		Str("failure_kind", string(kind)).
		Err(err).
		Msg("message not sent")
	return Outcome{Failure: &Failure{Kind: kind, Detail: err.Error()}}
}

func classify(err error) FailureKind {
	switch {
	case errors.Is(err, recipient.ErrInvalidRecipient):
		return FailureInvalidRecipient
	case errors.Is(err, channel.ErrUnsupportedMessage):
		return FailureUnsupportedMessage
	default:
		return FailureUnexpected
	}
}
