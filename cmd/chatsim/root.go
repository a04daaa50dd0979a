package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/chat-dispatch/internal/config"
	"github.com/example/chat-dispatch/internal/dispatch"
	"github.com/example/chat-dispatch/internal/logger"
	"github.com/example/chat-dispatch/internal/transport"
)

var rootCmd = &cobra.Command{
	Use:   "chatsim",
	Short: "Simulate validated message delivery across messaging channels",
	Long: `chatsim composes text or media messages and dispatches them through a
channel-specific validation and delivery routine. Delivery is simulated; the
point of the tool is exercising recipient validation and failure reporting.`,
	SilenceUsage: true,
}

// runtime bundles the collaborators every command needs.
type runtime struct {
	cfg        *config.Config
	log        zerolog.Logger
	transport  transport.Transport
	dispatcher *dispatch.Dispatcher
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	base, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init: %w", err)
	}
	log := base.With().Str("service", "chatsim").Logger()

	var tr transport.Transport
	switch cfg.Transport.Backend {
	case config.BackendMock:
		tr = transport.NewMock(
			log.With().Str("component", "mock-transport").Logger(),
			transport.WithScenario(transport.Scenario(cfg.Transport.MockScenario)),
			transport.WithLatency(time.Duration(cfg.Transport.LatencyMs)*time.Millisecond),
		)
	default:
		tr = transport.NewConsole(log.With().Str("component", "console-transport").Logger())
	}

	return &runtime{
		cfg:        cfg,
		log:        log,
		transport:  tr,
		dispatcher: dispatch.New(log.With().Str("component", "dispatcher").Logger()),
	}, nil
}

// printOutcome renders failed outcomes. Successful deliveries are already
// rendered by the console transport.
func printOutcome(out io.Writer, o dispatch.Outcome) {
	if o.Sent {
		return
	}
	switch o.Failure.Kind {
	case dispatch.FailureInvalidRecipient:
		fmt.Fprintf(out, "[error] invalid recipient: %s\n", o.Failure.Detail)
	case dispatch.FailureUnsupportedMessage:
		fmt.Fprintf(out, "[error] message not supported on this channel: %s\n", o.Failure.Detail)
	default:
		fmt.Fprintf(out, "[unexpected error] %s\n", o.Failure.Detail)
	}
}
