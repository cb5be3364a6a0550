package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Bot      Bot
	Catalog  Catalog
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"printswift"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

// Bot без токена выключен: админский бот и уведомления о сметах не запускаются.
type Bot struct {
	Token    string  `env:"BOT_TOKEN" json:"-"`
	ChatID   int64   `env:"BOT_CHAT_ID"`
	AdminIDs []int64 `env:"BOT_ADMIN_IDS" envSeparator:","`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

type Catalog struct {
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if config.Bot.Enabled() && config.Bot.ChatID == 0 {
		return Config{}, errors.New("BOT_CHAT_ID is required when BOT_TOKEN is set")
	}

	return config, nil
}
