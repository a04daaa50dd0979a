package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Transport backend names accepted by TRANSPORT_BACKEND.
const (
	BackendConsole = "console"
	BackendMock    = "mock"
)

// Config captures the runtime configuration of the simulator.
type Config struct {
	App       AppConfig
	Transport TransportConfig
}

// AppConfig contains generic application level settings.
type AppConfig struct {
	Env      string
	LogLevel string
}

// TransportConfig selects and tunes the delivery backend.
type TransportConfig struct {
	Backend      string
	LatencyMs    int
	MockScenario string
}

// Load reads environment variables, applies defaults, validates values and
// returns a populated Config instance. A .env file is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := &Config{}
	cfg.App.Env = ldr.getString("APP_ENV", "development")
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info")

	cfg.Transport.Backend = strings.ToLower(ldr.getString("TRANSPORT_BACKEND", BackendConsole))
	cfg.Transport.LatencyMs = ldr.getInt("TRANSPORT_LATENCY_MS", 0)
	cfg.Transport.MockScenario = strings.ToLower(ldr.getString("MOCK_SCENARIO", "success"))

	switch cfg.Transport.Backend {
	case BackendConsole, BackendMock:
	default:
		ldr.addError(fmt.Sprintf("TRANSPORT_BACKEND must be %q or %q", BackendConsole, BackendMock))
	}
	if cfg.Transport.LatencyMs < 0 {
		ldr.addError("TRANSPORT_LATENCY_MS must not be negative")
	}

	if err := ldr.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) getString(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		if val != "" {
			return val
		}
	}
	return def
}

func (l *envLoader) getInt(key string, def int) int {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		if val == "" {
			return def
		}
		i, err := strconv.Atoi(val)
		if err != nil {
			l.addError(fmt.Sprintf("%s must be a valid integer", key))
			return def
		}
		return i
	}
	return def
}

func (l *envLoader) addError(err string) {
	l.errs = append(l.errs, err)
}
