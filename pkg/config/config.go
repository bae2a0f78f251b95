package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Session SessionConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PEDIDOS_APP_ENV" default:"development"`
	Port         string `envconfig:"PEDIDOS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PEDIDOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PEDIDOS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig is optional: when URL and Address are both empty the service
// keeps order sessions in process memory instead.
type RedisConfig struct {
	URL          string        `envconfig:"PEDIDOS_REDIS_URL"`
	Address      string        `envconfig:"PEDIDOS_REDIS_ADDR"`
	Password     string        `envconfig:"PEDIDOS_REDIS_PASSWORD"`
	DB           int           `envconfig:"PEDIDOS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PEDIDOS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PEDIDOS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PEDIDOS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PEDIDOS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PEDIDOS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis-backed session store was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type SessionConfig struct {
	TTLMinutes int `envconfig:"PEDIDOS_SESSION_TTL_MINUTES" default:"240"`
}

// TTL returns the order session lifetime.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PEDIDOS_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
