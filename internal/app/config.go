package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/logging"
	"github.com/pnmeka/nostr-terminal/internal/relay"
	"github.com/pnmeka/nostr-terminal/internal/services/identity"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "NOSTR_TERMINAL_CONFIG"

// DefaultPassphraseEnv is the environment variable consulted for the key store passphrase.
const DefaultPassphraseEnv = "NOSTR_PASSPHRASE"

var relayURLPattern = regexp.MustCompile(`^wss?://\S+$`)

// Validator is implemented by configuration types that can check themselves.
type Validator interface {
	Validate() error
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Home  string      `yaml:"home"` // key store directory, e.g. $HOME/.nostr-terminal
	Log   LogConfig   `yaml:"log"`
	Relay RelayConfig `yaml:"relay"`
	Event EventConfig `yaml:"event"`
	Key   KeyConfig   `yaml:"key"`

	HTTP *http.Client `yaml:"-"` // optional; used for the websocket handshake
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level  slog.Level `yaml:"level"`
	Format string     `yaml:"format"`
}

// RelayConfig selects the relay and bounds the exchange with it.
type RelayConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// EventConfig holds defaults for new events.
type EventConfig struct {
	Kind domain.Kind `yaml:"kind"`
}

// KeyConfig names where credentials come from.
type KeyConfig struct {
	Env           string `yaml:"env"`            // holds an nsec; empty disables
	PassphraseEnv string `yaml:"passphrase_env"` // holds the key store passphrase
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Home, validation.Required),
	); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Relay.Validate(); err != nil {
		return fmt.Errorf("relay: %w", err)
	}
	return nil
}

// Validate validates the logging configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(logging.FormatText, logging.FormatJSON)),
	)
}

// Validate validates the relay configuration.
func (c *RelayConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.URL, validation.Required, validation.Match(relayURLPattern).
			Error("must be a ws:// or wss:// URL")),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Home: "~/.nostr-terminal",
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: logging.FormatText,
		},
		Relay: RelayConfig{
			URL:     "wss://relay.damus.io",
			Timeout: relay.DefaultTimeout,
		},
		Event: EventConfig{
			Kind: domain.KindTextNote,
		},
		Key: KeyConfig{
			Env:           identity.DefaultKeyEnv,
			PassphraseEnv: DefaultPassphraseEnv,
		},
	}
}

// Load reads a YAML file into target, expanding environment variables first,
// and validates the result when target implements Validator.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}

// LoadConfig returns the defaults overlaid with filename, if given. A missing
// file is an error only when the path was set explicitly.
func LoadConfig(filename string, explicit bool) (*Config, error) {
	cfg := NewDefaultConfig()
	if filename != "" {
		if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) && !explicit {
			filename = ""
		}
	}
	if filename != "" {
		if err := Load(filename, cfg); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	home, err := ExpandHome(cfg.Home)
	if err != nil {
		return nil, err
	}
	cfg.Home = home
	return cfg, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(dir, strings.TrimPrefix(path, "~")), nil
}

// Passphrase returns flag when set, otherwise the value of the configured
// passphrase environment variable.
func (c *Config) Passphrase(flag string) string {
	if flag != "" || c.Key.PassphraseEnv == "" {
		return flag
	}
	return os.Getenv(c.Key.PassphraseEnv)
}
