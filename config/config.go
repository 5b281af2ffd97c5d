package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full set of runtime settings, loaded from the environment.
type Config struct {
	Addr           string        `envconfig:"ADDR" default:":9090"`
	DatabaseURL    string        `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL       time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	LogFile        string        `envconfig:"LOG_FILE"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AuthRateLimit  string        `envconfig:"AUTH_RATE_LIMIT" default:"10-1m"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
