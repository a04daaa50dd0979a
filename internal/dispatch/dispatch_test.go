package dispatch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/channel"
	"github.com/example/chat-dispatch/internal/dispatch"
	"github.com/example/chat-dispatch/internal/models"
	"github.com/example/chat-dispatch/internal/transport"
)

// stubChannel lets tests drive dispatch with scripted send behaviour.
type stubChannel struct {
	name string
	send func(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error)
}

func (s *stubChannel) Name() string { return s.name }

func (s *stubChannel) Send(ctx context.Context, msg models.Message, to string) (*models.DeliveryReport, error) {
	return s.send(ctx, msg, to)
}

func newWhatsApp(t *testing.T) channel.Channel {
	t.Helper()
	ch, err := channel.NewWhatsApp(transport.NewMock(zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ch
}

func TestDispatchInvalidPhoneOnWhatsApp(t *testing.T) {
	d := dispatch.New(zerolog.Nop())

	outcome := d.Dispatch(context.Background(), newWhatsApp(t), models.NewTextMessage("hi"), "abc123")
	if outcome.Sent {
		t.Fatalf("expected failed outcome")
	}
	if outcome.Failure == nil || outcome.Failure.Kind != dispatch.FailureInvalidRecipient {
		t.Fatalf("expected invalid_recipient failure, got %+v", outcome.Failure)
	}
	if !strings.Contains(outcome.Failure.Detail, "abc123") {
		t.Fatalf("expected failure detail to echo the input, got %q", outcome.Failure.Detail)
	}
}

func TestDispatchOversizedUsernameOnInstagram(t *testing.T) {
	ig, err := channel.NewInstagram(transport.NewMock(zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := dispatch.New(zerolog.Nop())

	outcome := d.Dispatch(context.Background(), ig, models.NewTextMessage("hi"), strings.Repeat("u", 100))
	if outcome.Sent || outcome.Failure.Kind != dispatch.FailureInvalidRecipient {
		t.Fatalf("expected invalid_recipient failure, got %+v", outcome)
	}
}

func TestDispatchVideoOnTelegram(t *testing.T) {
	mock := transport.NewMock(zerolog.Nop())
	tg, err := channel.NewTelegram(mock, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := dispatch.New(zerolog.Nop())

	vid := models.NewMediaMessage("a video", "/tmp/video.mp4", "mp4",
		models.WithDurationSeconds(120))
	outcome := d.Dispatch(context.Background(), tg, vid, "@usuario_valido")

	if !outcome.Sent || outcome.Report == nil {
		t.Fatalf("expected sent outcome, got %+v", outcome)
	}
	if outcome.Report.FilePath != "/tmp/video.mp4" || outcome.Report.Format != "mp4" {
		t.Fatalf("expected report to include file path and format, got %+v", outcome.Report)
	}
	if outcome.Report.MessageType != models.TypeMedia {
		t.Fatalf("expected generic media type, got %q", outcome.Report.MessageType)
	}
	if len(mock.Reports()) != 1 {
		t.Fatalf("expected delivery to reach the transport")
	}
}

func TestDispatchIsIdempotent(t *testing.T) {
	tg, err := channel.NewTelegram(transport.NewMock(zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := dispatch.New(zerolog.Nop())

	msg := models.NewTextMessage("hi")
	first := d.Dispatch(context.Background(), tg, msg, "@alice")
	second := d.Dispatch(context.Background(), tg, msg, "@alice")

	if !first.Sent || !second.Sent {
		t.Fatalf("expected both dispatches to succeed: %+v / %+v", first, second)
	}
	if *first.Report != *second.Report {
		t.Fatalf("expected identical reports for identical inputs: %+v / %+v", first.Report, second.Report)
	}
}

func TestDispatchClassifiesUnsupportedMessage(t *testing.T) {
	d := dispatch.New(zerolog.Nop())
	ch := &stubChannel{
		name: "stub",
		send: func(context.Context, models.Message, string) (*models.DeliveryReport, error) {
			return nil, channel.ErrUnsupportedMessage
		},
	}

	outcome := d.Dispatch(context.Background(), ch, models.NewTextMessage("hi"), "anyone")
	if outcome.Sent || outcome.Failure.Kind != dispatch.FailureUnsupportedMessage {
		t.Fatalf("expected unsupported_message failure, got %+v", outcome)
	}
}

func TestDispatchClassifiesTransportFailureAsUnexpected(t *testing.T) {
	mock := transport.NewMock(zerolog.Nop(), transport.WithScenario(transport.ScenarioFailure))
	fb, err := channel.NewFacebook(mock, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := dispatch.New(zerolog.Nop())

	outcome := d.Dispatch(context.Background(), fb, models.NewTextMessage("hi"), "valid_user")
	if outcome.Sent || outcome.Failure.Kind != dispatch.FailureUnexpected {
		t.Fatalf("expected unexpected failure, got %+v", outcome)
	}
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	d := dispatch.New(zerolog.Nop())
	ch := &stubChannel{
		name: "stub",
		send: func(context.Context, models.Message, string) (*models.DeliveryReport, error) {
			panic("provider exploded")
		},
	}

	outcome := d.Dispatch(context.Background(), ch, models.NewTextMessage("hi"), "anyone")
	if outcome.Sent {
		t.Fatalf("expected failed outcome after panic")
	}
	if outcome.Failure.Kind != dispatch.FailureUnexpected {
		t.Fatalf("expected unexpected failure, got %+v", outcome.Failure)
	}
	if !strings.Contains(outcome.Failure.Detail, "provider exploded") {
		t.Fatalf("expected panic detail, got %q", outcome.Failure.Detail)
	}
}
