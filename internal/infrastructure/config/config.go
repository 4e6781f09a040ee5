package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	TokenTTL  string `env:"TOKEN_TTL, default=24h"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Password PasswordConfig
	Login    LoginConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// PasswordConfig is the registration password policy. Kept in configuration
// so deployments can tighten it without a code change.
type PasswordConfig struct {
	MinLength    int  `env:"PASSWORD_MIN_LENGTH,    default=8"`
	RequireMixed bool `env:"PASSWORD_REQUIRE_MIXED, default=true"`
}

// LoginConfig throttles authentication attempts per email.
type LoginConfig struct {
	MaxAttempts int    `env:"LOGIN_MAX_ATTEMPTS, default=10"`
	Window      string `env:"LOGIN_WINDOW,       default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=artop"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
