package config_test

import (
	"strings"
	"testing"

	"github.com/example/chat-dispatch/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "TRANSPORT_BACKEND", "TRANSPORT_LATENCY_MS", "MOCK_SCENARIO"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Env != "development" || cfg.App.LogLevel != "info" {
		t.Fatalf("unexpected app defaults: %+v", cfg.App)
	}
	if cfg.Transport.Backend != config.BackendConsole {
		t.Fatalf("expected console backend default, got %q", cfg.Transport.Backend)
	}
	if cfg.Transport.LatencyMs != 0 || cfg.Transport.MockScenario != "success" {
		t.Fatalf("unexpected transport defaults: %+v", cfg.Transport)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRANSPORT_BACKEND", "Mock")
	t.Setenv("TRANSPORT_LATENCY_MS", "25")
	t.Setenv("MOCK_SCENARIO", "FAILURE")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Env != "production" || cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if cfg.Transport.Backend != config.BackendMock {
		t.Fatalf("expected lowercased mock backend, got %q", cfg.Transport.Backend)
	}
	if cfg.Transport.LatencyMs != 25 || cfg.Transport.MockScenario != "failure" {
		t.Fatalf("unexpected transport config: %+v", cfg.Transport)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSPORT_BACKEND", "pigeon")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadAccumulatesErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSPORT_BACKEND", "pigeon")
	t.Setenv("TRANSPORT_LATENCY_MS", "not-a-number")

	_, err := config.Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "TRANSPORT_BACKEND") || !strings.Contains(err.Error(), "TRANSPORT_LATENCY_MS") {
		t.Fatalf("expected both validation errors to be reported, got %q", err.Error())
	}
}

func TestLoadRejectsNegativeLatency(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSPORT_LATENCY_MS", "-5")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for negative latency")
	}
}
