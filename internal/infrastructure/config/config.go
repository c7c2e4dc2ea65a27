package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AdminPassword is the plain admin secret; AdminPasswordBcrypt, when
	// set, takes precedence and is compared with bcrypt.
	AdminPassword       string        `env:"ADMIN_PASSWORD"`
	AdminPasswordBcrypt string        `env:"ADMIN_PASSWORD_BCRYPT"`
	SessionSecret       string        `env:"SESSION_SECRET"`
	SessionTTL          time.Duration `env:"SESSION_TTL, default=12h"`

	Redis  RedisConfig
	Upload UploadConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	Dir        string `env:"UPLOAD_DIR,         default=./uploads"`
	PublicBase string `env:"UPLOAD_PUBLIC_BASE, default=/uploads"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
