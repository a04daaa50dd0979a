package channel

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/transport"
)

// Names returns the supported channel names in display order.
func Names() []string {
	return []string{NameWhatsApp, NameTelegram, NameFacebook, NameInstagram}
}

// ForName constructs the channel registered under the given name. Matching is
// case-insensitive and ignores surrounding whitespace.
func ForName(name string, tr transport.Transport, logger zerolog.Logger) (Channel, error) {
	switch normalize(name) {
	case NameWhatsApp:
		return NewWhatsApp(tr, logger)
	case NameTelegram:
		return NewTelegram(tr, logger)
	case NameFacebook:
		return NewFacebook(tr, logger)
	case NameInstagram:
		return NewInstagram(tr, logger)
	default:
		return nil, fmt.Errorf("factory: unsupported channel %q", name)
	}
}

func normalize(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
