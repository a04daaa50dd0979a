package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/models"
)

// ConsoleOption customises the console transport.
type ConsoleOption func(*Console)

// WithWriter redirects the rendered report away from stdout.
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		if w != nil {
			c.out = w
		}
	}
}

// Console renders delivery reports to a writer. It simulates the provider
// call a real integration would make.
type Console struct {
	logger zerolog.Logger
	out    io.Writer
}

// NewConsole constructs a console transport writing to stdout by default.
func NewConsole(logger zerolog.Logger, opts ...ConsoleOption) *Console {
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}
	c := &Console{
		logger: logger,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Deliver implements Transport.
func (c *Console) Deliver(ctx context.Context, report *models.DeliveryReport) error {
	if report == nil {
		return errors.New("console transport: report is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "[%s] sending to %s -> type: %s, text: %s\n",
		report.Channel, report.Recipient, report.MessageType, report.Text)
	if report.MessageType != models.TypeText {
		fmt.Fprintf(c.out, "  file: %s (%s)\n", report.FilePath, report.Format)
	}
	fmt.Fprintf(c.out, "  -> sent via %s\n", report.Channel)

	c.logger.Debug().
		Str("channel", report.Channel).
		Str("message_id", report.MessageID).
		Str("message_type", report.MessageType).
		Msg("report rendered")
	return nil
}
