package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// SharedSecret is the bearer token HTTP clients must present.
	SharedSecret string `env:"MCP_TOKEN"`
	// CallerIdentity is what the validate tool reports, the shop's WhatsApp number.
	CallerIdentity string `env:"WHATSAPP_NUMBER"`

	HTTPPort              string `env:"HTTP_PORT" envDefault:"8085"`
	DefaultVendorID       string `env:"DEFAULT_VENDOR_ID" envDefault:"vendor_1"`
	SeedDemoOrders        bool   `env:"SEED_DEMO_ORDERS" envDefault:"true"`
	BacklogReportSchedule string `env:"BACKLOG_REPORT_SCHEDULE" envDefault:"@every 1m"`
	LogLevel              string `env:"LOG_LEVEL" envDefault:"info"`
	// RefDataFile replaces the embedded menu, agents and business profile when set.
	RefDataFile string `env:"REFDATA_FILE"`
}

// LoadConfig reads the given .env files, if they exist, into the process
// environment and parses Config from it. Variables already set win over the
// files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ValidateForHTTP reports settings the HTTP transport cannot run without.
func (c Config) ValidateForHTTP() error {
	if strings.TrimSpace(c.SharedSecret) == "" {
		return errors.New("MCP_TOKEN must be set to serve over HTTP")
	}
	return nil
}

// NewLogger builds a text slog logger at the configured level. Unknown
// levels fall back to info.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
