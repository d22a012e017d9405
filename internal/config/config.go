package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrMissingToken = errors.New("telegram bot token is not set")

type Config struct {
	BotToken       string
	LogLevel       zerolog.Level
	HandlerTimeout time.Duration
	Backend        string
	JPEGQuality    int
	MetricsAddr    string
}

// Load reads config.toml from dir if present, then applies environment
// overrides. A .env file in dir is loaded into the environment first.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("toml")

	v.SetDefault("bot.log_level", "info")
	v.SetDefault("handler.timeout", "60s")
	v.SetDefault("converter.backend", "native")
	v.SetDefault("converter.jpeg_quality", 90)
	v.SetDefault("metrics.listen_addr", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("telegram.bot_token", "BOT_TOKEN", "TELEGRAM_BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return parse(v)
}

func parse(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		BotToken:    strings.TrimSpace(v.GetString("telegram.bot_token")),
		Backend:     strings.ToLower(v.GetString("converter.backend")),
		JPEGQuality: v.GetInt("converter.jpeg_quality"),
		MetricsAddr: v.GetString("metrics.listen_addr"),
	}

	if cfg.BotToken == "" {
		return nil, ErrMissingToken
	}

	level, err := zerolog.ParseLevel(v.GetString("bot.log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid bot.log_level: %w", err)
	}
	cfg.LogLevel = level

	timeout, err := time.ParseDuration(v.GetString("handler.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid handler.timeout: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("handler.timeout must be positive, got %s", timeout)
	}
	cfg.HandlerTimeout = timeout

	switch cfg.Backend {
	case "native", "magick":
	default:
		return nil, fmt.Errorf("unknown converter.backend %q", cfg.Backend)
	}

	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return nil, fmt.Errorf("converter.jpeg_quality must be within 1..100, got %d", cfg.JPEGQuality)
	}

	return cfg, nil
}
