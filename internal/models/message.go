package models

import (
	"time"

	"github.com/google/uuid"
)

// Message type constants used in metadata views and delivery reports.
const (
	TypeText  = "text"
	TypeMedia = "media"
	TypePhoto = "photo"
	TypeFile  = "file"
)

// Message is the polymorphic content handed to channels. Channels consume a
// message exclusively through its metadata view; the concrete variant decides
// which keys appear. The `type` and `text` keys are always present.
type Message interface {
	ID() string
	Text() string
	SentAt() time.Time
	Metadata() map[string]any
}

// Option customises message construction.
type Option func(*options)

type options struct {
	sentAt          time.Time
	durationSeconds *int
}

// WithSentAt overrides the send timestamp, which otherwise defaults to the
// construction time.
func WithSentAt(ts time.Time) Option {
	return func(o *options) {
		o.sentAt = ts
	}
}

// WithDurationSeconds attaches a playback duration. Only generic media
// messages honour it; photo and file messages always drop the duration.
func WithDurationSeconds(seconds int) Option {
	return func(o *options) {
		s := seconds
		o.durationSeconds = &s
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.sentAt.IsZero() {
		o.sentAt = time.Now()
	}
	return o
}

// base carries the fields shared by every message variant. Messages are
// immutable after construction.
type base struct {
	id     string
	text   string
	sentAt time.Time
}

func newBase(text string, o options) base {
	return base{
		id:     uuid.NewString(),
		text:   text,
		sentAt: o.sentAt,
	}
}

// ID returns the unique identifier assigned at construction.
func (b base) ID() string { return b.id }

// Text returns the caller-provided message body.
func (b base) Text() string { return b.text }

// SentAt returns the send timestamp fixed at construction.
func (b base) SentAt() time.Time { return b.sentAt }

// TextMessage is a plain text message with no attachments.
type TextMessage struct {
	base
}

// NewTextMessage constructs a text message. Construction never fails;
// recipient validation is a channel concern.
func NewTextMessage(text string, opts ...Option) *TextMessage {
	return &TextMessage{base: newBase(text, applyOptions(opts))}
}

// Metadata implements Message.
func (m *TextMessage) Metadata() map[string]any {
	return map[string]any{
		"type": TypeText,
		"text": m.text,
	}
}

// MediaMessage is the generic media variant: a file reference, a format tag
// and an optional playback duration. It is directly usable (video content is
// sent as a generic media message carrying a duration) and is embedded by the
// photo and file specialisations.
type MediaMessage struct {
	base
	filePath        string
	format          string
	durationSeconds *int
}

// NewMediaMessage constructs a generic media message.
func NewMediaMessage(text, filePath, format string, opts ...Option) *MediaMessage {
	m := newMedia(text, filePath, format, applyOptions(opts))
	return &m
}

func newMedia(text, filePath, format string, o options) MediaMessage {
	return MediaMessage{
		base:            newBase(text, o),
		filePath:        filePath,
		format:          format,
		durationSeconds: o.durationSeconds,
	}
}

// FilePath returns the file reference attached to the message.
func (m *MediaMessage) FilePath() string { return m.filePath }

// Format returns the media format tag, e.g. "jpg" or "mp4".
func (m *MediaMessage) Format() string { return m.format }

// DurationSeconds reports the playback duration when one was attached.
func (m *MediaMessage) DurationSeconds() (int, bool) {
	if m.durationSeconds == nil {
		return 0, false
	}
	return *m.durationSeconds, true
}

// Metadata implements Message.
func (m *MediaMessage) Metadata() map[string]any {
	meta := map[string]any{
		"type":      TypeMedia,
		"text":      m.text,
		"file_path": m.filePath,
		"format":    m.format,
	}
	if m.durationSeconds != nil {
		meta["duration_seconds"] = *m.durationSeconds
	}
	return meta
}

// PhotoMessage is a media message without a duration.
type PhotoMessage struct {
	MediaMessage
}

// NewPhotoMessage constructs a photo message. Any duration option is
// discarded; photos have no playback duration.
func NewPhotoMessage(text, filePath, format string, opts ...Option) *PhotoMessage {
	o := applyOptions(opts)
	o.durationSeconds = nil
	return &PhotoMessage{MediaMessage: newMedia(text, filePath, format, o)}
}

// Metadata implements Message.
func (m *PhotoMessage) Metadata() map[string]any {
	meta := m.MediaMessage.Metadata()
	meta["type"] = TypePhoto
	return meta
}

// FileMessage is a media message representing a document attachment.
type FileMessage struct {
	MediaMessage
}

// NewFileMessage constructs a file message. Any duration option is discarded.
func NewFileMessage(text, filePath, format string, opts ...Option) *FileMessage {
	o := applyOptions(opts)
	o.durationSeconds = nil
	return &FileMessage{MediaMessage: newMedia(text, filePath, format, o)}
}

// Metadata implements Message.
func (m *FileMessage) Metadata() map[string]any {
	meta := m.MediaMessage.Metadata()
	meta["type"] = TypeFile
	return meta
}
