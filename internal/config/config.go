package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	StoreDriver  string
	StoreTimeout time.Duration

	MongoURI                  string
	MongoDatabase             string
	MongoProductsCollection   string
	MongoCategoriesCollection string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	SeedOnStart bool
}

// IsProduction reports whether the service runs in a production environment.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// CacheEnabled reports whether a Redis address was configured.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("STORE_TIMEOUT", 3*time.Second)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "catalog")
	v.SetDefault("MONGO_PRODUCTS_COLLECTION", "products")
	v.SetDefault("MONGO_CATEGORIES_COLLECTION", "categories")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CACHE_TTL", 30*time.Second)
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("SEED_ON_START", false)
}

// Load reads defaults, then catalog.yaml from . or ./config when present,
// then the environment. Later sources win.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("catalog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppEnv:                    strings.ToLower(v.GetString("APP_ENV")),
		HTTPAddr:                  v.GetString("HTTP_ADDR"),
		StoreDriver:               strings.ToLower(v.GetString("STORE_DRIVER")),
		StoreTimeout:              v.GetDuration("STORE_TIMEOUT"),
		MongoURI:                  v.GetString("MONGO_URI"),
		MongoDatabase:             v.GetString("MONGO_DATABASE"),
		MongoProductsCollection:   v.GetString("MONGO_PRODUCTS_COLLECTION"),
		MongoCategoriesCollection: v.GetString("MONGO_CATEGORIES_COLLECTION"),
		DatabaseURL:               v.GetString("DATABASE_URL"),
		RedisAddr:                 v.GetString("REDIS_ADDR"),
		RedisPassword:             v.GetString("REDIS_PASSWORD"),
		CacheTTL:                  v.GetDuration("CACHE_TTL"),
		RateLimitRPS:              v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:            v.GetInt("RATE_LIMIT_BURST"),
		SeedOnStart:               v.GetBool("SEED_ON_START"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("config: STORE_TIMEOUT must be positive, got %s", c.StoreTimeout)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("config: CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}
