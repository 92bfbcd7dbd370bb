package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Build-time variables injected via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Output formats accepted by WINREADY_OUTPUT.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds all tool configuration loaded from environment variables.
type Config struct {
	// ProbeTimeout bounds each individual capability probe.
	ProbeTimeout time.Duration

	// DxdiagBinary is the path to the DirectX diagnostic executable.
	DxdiagBinary string

	// DxdiagPoll is the interval at which the diagnostic report file is
	// re-checked while waiting for the tool to finish writing it.
	DxdiagPoll time.Duration

	// ReportDir is the directory where the diagnostic tool writes its
	// XML report.
	ReportDir string

	// Output selects the renderer: "table" or "json".
	Output string

	// LogDir is the directory for log files. Empty means log to stderr.
	LogDir string

	// Debug enables debug-level logging.
	Debug bool
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ProbeTimeout: 10 * time.Second,
		DxdiagBinary: "dxdiag",
		DxdiagPoll:   500 * time.Millisecond,
		ReportDir:    os.TempDir(),
		Output:       OutputTable,
	}
}

// Load reads configuration from environment variables, applying defaults
// for anything not explicitly set. Returns an error if values are
// malformed.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("WINREADY_PROBE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("WINREADY_PROBE_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("WINREADY_PROBE_TIMEOUT must be positive, got %s", d)
		}
		cfg.ProbeTimeout = d
	}

	if v := os.Getenv("WINREADY_DXDIAG_BINARY"); v != "" {
		cfg.DxdiagBinary = v
	}

	if v := os.Getenv("WINREADY_DXDIAG_POLL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("WINREADY_DXDIAG_POLL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("WINREADY_DXDIAG_POLL must be positive, got %s", d)
		}
		cfg.DxdiagPoll = d
	}

	if v := os.Getenv("WINREADY_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}

	if v := strings.ToLower(os.Getenv("WINREADY_OUTPUT")); v != "" {
		if v != OutputTable && v != OutputJSON {
			return nil, fmt.Errorf("WINREADY_OUTPUT must be %q or %q, got %q", OutputTable, OutputJSON, v)
		}
		cfg.Output = v
	}

	if v := os.Getenv("WINREADY_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}

	cfg.Debug = os.Getenv("WINREADY_DEBUG") == "true"

	return cfg, nil
}
