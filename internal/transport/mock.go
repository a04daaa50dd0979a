package transport

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/chat-dispatch/internal/models"
)

// Scenario enumerates supported behaviours for the mock transport.
type Scenario string

const (
	ScenarioSuccess Scenario = "success"
	ScenarioFailure Scenario = "failure"
	ScenarioTimeout Scenario = "timeout"
)

// MockOption customises the mock transport at construction time.
type MockOption func(*Mock)

// WithScenario overrides the default scenario.
func WithScenario(s Scenario) MockOption {
	return func(m *Mock) {
		m.scenario = s
	}
}

// WithLatency sets the artificial latency inserted before responding.
func WithLatency(d time.Duration) MockOption {
	return func(m *Mock) {
		if d < 0 {
			d = 0
		}
		m.latency = d
	}
}

// WithClock swaps out the clock for deterministic timestamps in tests.
func WithClock(now func() time.Time) MockOption {
	return func(m *Mock) {
		if now != nil {
			m.now = now
		}
	}
}

// Mock is a deterministic transport suitable for tests. It records every
// delivered report and can simulate failures and latency.
type Mock struct {
	logger   zerolog.Logger
	scenario Scenario
	latency  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	reports  []models.DeliveryReport
	accepted []time.Time
}

// NewMock constructs a mock transport that succeeds by default.
func NewMock(logger zerolog.Logger, opts ...MockOption) *Mock {
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}
	m := &Mock{
		logger:   logger,
		scenario: ScenarioSuccess,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Deliver implements Transport.
func (m *Mock) Deliver(ctx context.Context, report *models.DeliveryReport) error {
	if report == nil {
		return errors.New("mock transport: report is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	switch m.scenario {
	case ScenarioSuccess:
		m.record(report)
		m.logger.Debug().
			Str("channel", report.Channel).
			Str("message_id", report.MessageID).
			Msg("mock delivery accepted")
		return nil
	case ScenarioFailure:
		return fmt.Errorf("mock transport: provider rejected message %s", report.MessageID)
	case ScenarioTimeout:
		return fmt.Errorf("mock transport: provider timeout for message %s", report.MessageID)
	default:
		return fmt.Errorf("mock transport: unknown scenario %q", m.scenario)
	}
}

func (m *Mock) record(report *models.DeliveryReport) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, *report)
	m.accepted = append(m.accepted, m.now())
}

// Reports returns a copy of the reports delivered so far.
func (m *Mock) Reports() []models.DeliveryReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.DeliveryReport, len(m.reports))
	copy(out, m.reports)
	return out
}

// AcceptedAt returns the clock readings taken as each report was accepted.
func (m *Mock) AcceptedAt() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Time, len(m.accepted))
	copy(out, m.accepted)
	return out
}
