package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "port: 9000\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("host = %q, want default", cfg.Host)
	}
	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("addr = %q", cfg.Addr())
	}
}

func TestLoadConfigTLS(t *testing.T) {
	path := writeConfig(t, `
port: 50051
tls:
  enabled: true
  cert_file: /etc/certs/server.crt
  key_file: /etc/certs/server.key
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.TLS.Enabled || cfg.TLS.CertFile == "" {
		t.Errorf("tls config not loaded: %+v", cfg.TLS)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad port", "port: -1\n"},
		{"tls missing files", "tls:\n  enabled: true\n"},
		{"malformed yaml", "port: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tc.content)); err == nil {
				t.Error("expected load to fail")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("DISCORD_BOT_TOKEN", "dc-token")
	t.Setenv("DISCORD_CHANNEL_IDS", "111,222")
	t.Setenv("WHATSAPP_ACCESS_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "")

	creds, err := LoadCredentials(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !creds.TelegramConfigured() {
		t.Error("telegram should be configured")
	}
	if !creds.DiscordConfigured() {
		t.Error("discord should be configured")
	}
	if len(creds.DiscordChannelIDs) != 2 || creds.DiscordChannelIDs[1] != "222" {
		t.Errorf("channel ids = %v, want [111 222]", creds.DiscordChannelIDs)
	}
	if creds.WhatsAppConfigured() {
		t.Error("whatsapp should not be configured")
	}
}

func TestBuildDispatcherRegistersConfiguredPlatforms(t *testing.T) {
	creds := &Credentials{
		TelegramBotToken:    "tg",
		WhatsAppAccessToken: "wa",
		WhatsAppPhoneID:     "phone",
	}
	d, queue := BuildDispatcher(creds, testLogger())

	adapters := d.Adapters(nil)
	if len(adapters) != 2 {
		t.Fatalf("registered %d adapters, want telegram and whatsapp", len(adapters))
	}
	if adapters[0].Platform() != PlatformTelegram || adapters[1].Platform() != PlatformWhatsApp {
		t.Errorf("unexpected adapters: %v, %v", adapters[0].Platform(), adapters[1].Platform())
	}
	if queue == nil {
		t.Error("whatsapp queue should be returned when configured")
	}
}

func TestBuildDispatcherEmptyCredentials(t *testing.T) {
	d, queue := BuildDispatcher(&Credentials{}, testLogger())
	if len(d.Adapters(nil)) != 0 {
		t.Error("no adapters should be registered without credentials")
	}
	if queue != nil {
		t.Error("queue should be nil without whatsapp credentials")
	}
}
