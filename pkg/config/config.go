package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Carousel CarouselConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Catalog.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BACOLA_APP_ENV" default:"dev"`
	Port         string `envconfig:"BACOLA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BACOLA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BACOLA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig is optional: when neither URL nor Address is set the service
// falls back to the in-memory session store.
type RedisConfig struct {
	URL          string        `envconfig:"BACOLA_REDIS_URL"`
	Address      string        `envconfig:"BACOLA_REDIS_ADDR"`
	Password     string        `envconfig:"BACOLA_REDIS_PASSWORD"`
	DB           int           `envconfig:"BACOLA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BACOLA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BACOLA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BACOLA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BACOLA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BACOLA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CatalogConfig struct {
	DefaultPriceMin int `envconfig:"BACOLA_CATALOG_PRICE_MIN" default:"0"`
	DefaultPriceMax int `envconfig:"BACOLA_CATALOG_PRICE_MAX" default:"50"`
	DefaultPageSize int `envconfig:"BACOLA_CATALOG_PAGE_SIZE" default:"12"`
	MaxPageSize     int `envconfig:"BACOLA_CATALOG_MAX_PAGE_SIZE" default:"48"`
}

func (c CatalogConfig) validate() error {
	if c.DefaultPriceMin > c.DefaultPriceMax {
		return fmt.Errorf("catalog price range inverted: min %d > max %d", c.DefaultPriceMin, c.DefaultPriceMax)
	}
	if c.DefaultPageSize <= 0 || c.MaxPageSize <= 0 {
		return fmt.Errorf("catalog page sizes must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("catalog default page size %d exceeds max %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

type SessionConfig struct {
	CookieName string        `envconfig:"BACOLA_SESSION_COOKIE" default:"bacola_session"`
	TTL        time.Duration `envconfig:"BACOLA_SESSION_TTL" default:"720h"`
}

type CarouselConfig struct {
	AutoPlay bool          `envconfig:"BACOLA_CAROUSEL_AUTOPLAY" default:"true"`
	Interval time.Duration `envconfig:"BACOLA_CAROUSEL_INTERVAL" default:"5s"`
}
