package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/chat-dispatch/internal/channel"
	"github.com/example/chat-dispatch/internal/models"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the fixed validation scenarios",
	Long: `Runs three canned dispatches: an invalid phone number on WhatsApp, an
oversized username on Instagram and a video delivered to a Telegram username.
Validation failures are reported, never fatal.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	chLog := rt.log.With().Str("component", "channel").Logger()
	wa, err := channel.NewWhatsApp(rt.transport, chLog)
	if err != nil {
		return err
	}
	tg, err := channel.NewTelegram(rt.transport, chLog)
	if err != nil {
		return err
	}
	ig, err := channel.NewInstagram(rt.transport, chLog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	txt := models.NewTextMessage("Hello! This is a test text message.")
	vid := models.NewMediaMessage("Check out this test video", "/tmp/video.mp4", "mp4",
		models.WithDurationSeconds(120))

	fmt.Fprintln(out, "--- scenario: invalid phone number (WhatsApp) ---")
	printOutcome(out, rt.dispatcher.Dispatch(ctx, wa, txt, "abc123"))

	fmt.Fprintln(out, "--- scenario: oversized username (Instagram) ---")
	printOutcome(out, rt.dispatcher.Dispatch(ctx, ig, txt, strings.Repeat("u", 100)))

	fmt.Fprintln(out, "--- scenario: video delivery (Telegram) ---")
	printOutcome(out, rt.dispatcher.Dispatch(ctx, tg, vid, "@usuario_valido"))

	fmt.Fprintln(out, "validation scenarios finished")
	return nil
}
