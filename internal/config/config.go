// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable: strings for identifiers and
// secrets, ints for durations and costs.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DatabaseURL     string // Postgres connection string
	JWTSecret       string // secret used to sign admin JWTs
	AccessTTLMin    int    // access token time-to-live in minutes
	BcryptCost      int    // bcrypt cost for password hashing
	PaystackSecret  string // Paystack API secret key
	PaystackBaseURL string // Paystack API base URL
	RabbitURL       string // AMQP broker URL (optional)
}

// Load reads configuration from environment variables. Required
// variables are enforced by must() and missing values cause the
// program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:             getenvDef("APP_ENV", "dev"),
		Port:            getenvDef("APP_PORT", "3000"),
		DatabaseURL:     must("DATABASE_URL"),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    envInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:      envInt("BCRYPT_COST", 10),
		PaystackSecret:  must("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL: getenvDef("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		RabbitURL:       os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves a required environment variable. If the variable is
// unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenvDef(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
