package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"

	"github.com/janixware/site-backend/internal/shared/errors"
)

type Config struct {
	HTTPPort string `koanf:"http_port"`
	AppEnv   string `koanf:"app_env"`

	// Feed aggregation
	FeedURLs            []string `koanf:"feed_urls"`
	FeedFetchTimeoutSec int      `koanf:"feed_fetch_timeout_seconds"`

	// Inquiry delivery
	AWSRegion         string `koanf:"aws_region"`
	ContactFromEmail  string `koanf:"contact_from_email"`
	ContactToEmail    string `koanf:"contact_to_email"`
	WhatsAppPhone     string `koanf:"whatsapp_phone"`
	ContactWebhookURL string `koanf:"contact_webhook_url"`
	TelegramBotToken  string `koanf:"telegram_bot_token"`
	TelegramChatID    string `koanf:"telegram_chat_id"`

	// Blog feed
	SiteBaseURL string `koanf:"site_base_url"`
}

// FeedFetchTimeout is the per-source budget; a source that does not answer
// within it contributes zero items to that round.
func (c *Config) FeedFetchTimeout() time.Duration {
	return time.Duration(c.FeedFetchTimeoutSec) * time.Second
}

func (c *Config) EmailEnabled() bool {
	return c.ContactFromEmail != "" && c.ContactToEmail != ""
}

func (c *Config) WebhookEnabled() bool {
	return c.ContactWebhookURL != ""
}

func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Defaults reproduce the production deployment of the site
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}
	if !k.Exists("feed_urls") {
		k.Set("feed_urls", []string{
			"https://feeds.feedburner.com/GDBcode",
			"https://techcrunch.com/feed/",
			"https://www.cnet.com/rss/news/",
		})
	}
	if !k.Exists("feed_fetch_timeout_seconds") {
		k.Set("feed_fetch_timeout_seconds", 10)
	}
	if !k.Exists("contact_to_email") {
		k.Set("contact_to_email", "janixware@gmail.com")
	}
	if !k.Exists("whatsapp_phone") {
		k.Set("whatsapp_phone", "94713974674")
	}
	if !k.Exists("site_base_url") {
		k.Set("site_base_url", "https://janixware.com")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// feed_urls may arrive as a comma-separated string from the environment
	if raw := k.Get("feed_urls"); raw != nil {
		if s, ok := raw.(string); ok {
			cfg.FeedURLs = ParseFeedURLs(s)
		}
	}

	if len(cfg.FeedURLs) == 0 {
		return nil, errors.ErrNoFeedSources
	}
	if cfg.WhatsAppPhone == "" {
		return nil, errors.ErrMissingWhatsAppPhone
	}

	return &cfg, nil
}

// ParseFeedURLs parses a comma-separated URL list into a slice
func ParseFeedURLs(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
}
