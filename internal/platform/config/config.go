package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	LogLevel        slog.Level
	LogFormat       string
	TraceExporter   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Log output formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Trace exporters. With TraceExporterNone spans are still recorded by the
// SDK but never leave the process.
const (
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
)

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	cfg := Server{
		Addr:          firstNonEmpty(os.Getenv("EGID_ADDR"), ":8080"),
		LogFormat:     strings.ToLower(firstNonEmpty(os.Getenv("EGID_LOG_FORMAT"), LogFormatJSON)),
		TraceExporter: strings.ToLower(firstNonEmpty(os.Getenv("EGID_TRACE_EXPORTER"), TraceExporterNone)),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(firstNonEmpty(os.Getenv("EGID_LOG_LEVEL"), "info"))); err != nil {
		return Server{}, fmt.Errorf("EGID_LOG_LEVEL: %w", err)
	}

	switch cfg.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return Server{}, fmt.Errorf("EGID_LOG_FORMAT: unsupported format %q", cfg.LogFormat)
	}

	switch cfg.TraceExporter {
	case TraceExporterNone, TraceExporterStdout:
	default:
		return Server{}, fmt.Errorf("EGID_TRACE_EXPORTER: unsupported exporter %q", cfg.TraceExporter)
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv("EGID_REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("EGID_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Server{}, err
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, d)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
