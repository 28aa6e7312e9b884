package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress     string `env:"RUN_ADDRESS" envDefault:"localhost:8084"`
	DatabaseURI    string `env:"DATABASE_URI" envDefault:""`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://internal/migrations"`
	RedisURL       string `env:"REDIS_URL" envDefault:""`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	SecretKey     string  `env:"KEY" envDefault:""`
	BotSecretHash string  `env:"BOT_SECRET_HASH" envDefault:""`
	DepositKey    string  `env:"DEPOSIT_KEY" envDefault:""`
	RateLimit     float64 `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst     int     `env:"RATE_BURST" envDefault:"10"`

	PriceAPIURL   string        `env:"PRICE_API_URL" envDefault:"https://api.coingecko.com"`
	PriceCacheTTL time.Duration `env:"PRICE_CACHE_TTL" envDefault:"5m"`

	PlatformAccount      string        `env:"PLATFORM_ACCOUNT" envDefault:"platform"`
	DefaultFeePercentage float64       `env:"DEFAULT_FEE_PERCENTAGE" envDefault:"10"`
	TOSDeadline          time.Duration `env:"TOS_DEADLINE" envDefault:"10m"`
	StaleTicketAge       time.Duration `env:"STALE_TICKET_AGE" envDefault:"12h"`
	StuckTicketAge       time.Duration `env:"STUCK_TICKET_AGE" envDefault:"15m"`
	SweepInterval        time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) ParseFlags() {
	var (
		runAddress  string
		dbURI       string
		redisURL    string
		priceAPIURL string
		secretKey   string
		logLevel    string
	)

	flag.StringVar(&runAddress, "a", "", "address host:port")
	flag.StringVar(&dbURI, "d", "", "database dsn")
	flag.StringVar(&redisURL, "r", "", "redis url for the price cache")
	flag.StringVar(&priceAPIURL, "p", "", "price api base url")
	flag.StringVar(&secretKey, "k", "", "secret key to sign tokens and hashes")
	flag.StringVar(&logLevel, "l", "", "log level")

	flag.Parse()

	if runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if dbURI != "" {
		cfg.DatabaseURI = dbURI
	}

	if redisURL != "" {
		cfg.RedisURL = redisURL
	}

	if priceAPIURL != "" {
		cfg.PriceAPIURL = priceAPIURL
	}

	if secretKey != "" {
		cfg.SecretKey = secretKey
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
