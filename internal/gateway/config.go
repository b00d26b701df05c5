package gateway

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// Version reported by the Health RPC.
const Version = "0.1.0"

// TLSConfig holds the optional TLS listener settings.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// GatewayConfig is the server-side configuration loaded from a YAML file.
// Platform credentials deliberately live in the environment, not here, so a
// config file can be committed without leaking secrets.
type GatewayConfig struct {
	Host     string    `yaml:"host"`
	Port     int       `yaml:"port"`
	TLS      TLSConfig `yaml:"tls"`
	LogLevel string    `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *GatewayConfig {
	return &GatewayConfig{
		Host:     "0.0.0.0",
		Port:     50051,
		LogLevel: string(pkgLogger.LogLevelInfo),
	}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
func LoadConfig(path string) (*GatewayConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *GatewayConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	if c.TLS.Enabled && (c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		return errors.New("tls enabled but cert_file or key_file missing")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *GatewayConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Credentials are the per-platform secrets, read from the environment.
type Credentials struct {
	TelegramBotToken    string   `env:"TELEGRAM_BOT_TOKEN"`
	DiscordBotToken     string   `env:"DISCORD_BOT_TOKEN"`
	DiscordChannelIDs   []string `env:"DISCORD_CHANNEL_IDS"`
	WhatsAppAccessToken string   `env:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneID     string   `env:"WHATSAPP_PHONE_NUMBER_ID"`
}

// LoadCredentials reads platform credentials from the process environment.
func LoadCredentials(ctx context.Context) (*Credentials, error) {
	var creds Credentials
	if err := envconfig.Process(ctx, &creds); err != nil {
		return nil, errors.Wrap(err, "load credentials")
	}
	return &creds, nil
}

func (c *Credentials) TelegramConfigured() bool {
	return c.TelegramBotToken != ""
}

func (c *Credentials) DiscordConfigured() bool {
	return c.DiscordBotToken != "" && len(c.DiscordChannelIDs) > 0
}

func (c *Credentials) WhatsAppConfigured() bool {
	return c.WhatsAppAccessToken != "" && c.WhatsAppPhoneID != ""
}

// BuildDispatcher registers an adapter for every configured platform. The
// WhatsApp queue is returned so a webhook receiver can feed it; it is nil
// when WhatsApp is not configured.
func BuildDispatcher(creds *Credentials, logger *pkgLogger.Logger) (*Dispatcher, *MemoryQueue) {
	d := NewDispatcher(logger)
	var queue *MemoryQueue

	if creds.TelegramConfigured() {
		d.Register(NewTelegramAdapter(creds.TelegramBotToken, logger))
	}
	if creds.DiscordConfigured() {
		d.Register(NewDiscordAdapter(creds.DiscordBotToken, creds.DiscordChannelIDs, logger))
	}
	if creds.WhatsAppConfigured() {
		queue = NewMemoryQueue()
		d.Register(NewWhatsAppAdapter(creds.WhatsAppAccessToken, creds.WhatsAppPhoneID, queue, logger))
	}
	return d, queue
}
