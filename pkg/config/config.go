package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Shipping   ShippingConfig
	Redis      RedisConfig
	QuoteCache QuoteCacheConfig
	RateLimit  RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Shipping.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BLEESHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"BLEESHOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BLEESHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BLEESHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ShippingConfig carries the immutable rate-calculation settings: the store
// origin postal code and the carrier aggregator credentials.
type ShippingConfig struct {
	OriginPostalCode string        `envconfig:"BLEESHOP_SHIPPING_ORIGIN_POSTAL_CODE" default:"01001000"`
	Token            string        `envconfig:"BLEESHOP_SHIPPING_TOKEN" required:"true"`
	BaseURL          string        `envconfig:"BLEESHOP_SHIPPING_BASE_URL" default:"https://sandbox.melhorenvio.com.br/api/v2"`
	UserAgent        string        `envconfig:"BLEESHOP_SHIPPING_USER_AGENT" default:"BleeShop Integration"`
	Timeout          time.Duration `envconfig:"BLEESHOP_SHIPPING_TIMEOUT" default:"10s"`
}

func (s ShippingConfig) validate() error {
	origin := strings.TrimSpace(s.OriginPostalCode)
	if len(origin) < 8 {
		return fmt.Errorf("%s must hold at least 8 digits", EnvShippingOrigin)
	}
	for _, r := range origin {
		if r < '0' || r > '9' {
			return fmt.Errorf("%s must hold digits only", EnvShippingOrigin)
		}
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"BLEESHOP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BLEESHOP_REDIS_ADDR"`
	Password     string        `envconfig:"BLEESHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"BLEESHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BLEESHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BLEESHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BLEESHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BLEESHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BLEESHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// QuoteCacheConfig controls the short-lived cache of resolved quotes. The
// cache sits in front of the resolver, never inside it.
type QuoteCacheConfig struct {
	Enabled bool          `envconfig:"BLEESHOP_QUOTE_CACHE_ENABLED" default:"true"`
	TTL     time.Duration `envconfig:"BLEESHOP_QUOTE_CACHE_TTL" default:"5m"`
}

type RateLimitConfig struct {
	Window  time.Duration `envconfig:"BLEESHOP_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"BLEESHOP_RATE_LIMIT_IP_LIMIT" default:"60"`
}
