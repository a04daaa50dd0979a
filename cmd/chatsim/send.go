package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/chat-dispatch/internal/channel"
	"github.com/example/chat-dispatch/internal/models"
)

var (
	sendChannel  string
	sendType     string
	sendText     string
	sendFilePath string
	sendFormat   string
	sendDuration int
)

var sendCmd = &cobra.Command{
	Use:   "send RECIPIENT",
	Short: "Compose a message and dispatch it through a channel",
	Args:  cobra.ExactArgs(1),
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendChannel, "channel", "c", channel.NameWhatsApp,
		fmt.Sprintf("Channel: %s", strings.Join(channel.Names(), ", ")))
	sendCmd.Flags().StringVarP(&sendType, "type", "t", models.TypeText, "Message type: text, photo, video or file")
	sendCmd.Flags().StringVarP(&sendText, "text", "m", "test message", "Message text")
	sendCmd.Flags().StringVar(&sendFilePath, "file-path", "", "File reference for media messages")
	sendCmd.Flags().StringVar(&sendFormat, "format", "", "Format tag for media messages, e.g. jpg, mp4, pdf")
	sendCmd.Flags().IntVar(&sendDuration, "duration", 60, "Video duration in seconds")

	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	msg, err := buildMessage()
	if err != nil {
		return err
	}

	ch, err := channel.ForName(sendChannel, rt.transport, rt.log.With().Str("component", "channel").Logger())
	if err != nil {
		return err
	}

	outcome := rt.dispatcher.Dispatch(cmd.Context(), ch, msg, args[0])
	printOutcome(cmd.OutOrStdout(), outcome)
	return nil
}

func buildMessage() (models.Message, error) {
	switch strings.ToLower(strings.TrimSpace(sendType)) {
	case models.TypeText:
		return models.NewTextMessage(sendText), nil
	case models.TypePhoto:
		return models.NewPhotoMessage(sendText, sendFilePath, sendFormat), nil
	case "video":
		// Video rides on the generic media variant and keeps the "media" type.
		return models.NewMediaMessage(sendText, sendFilePath, sendFormat,
			models.WithDurationSeconds(sendDuration)), nil
	case models.TypeFile:
		return models.NewFileMessage(sendText, sendFilePath, sendFormat), nil
	default:
		return nil, fmt.Errorf("unknown message type %q", sendType)
	}
}
