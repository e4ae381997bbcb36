package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config carries all runtime settings. Values come from the environment,
// optionally seeded from a .env file during local development.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	JWTSecret            string `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer            string `envconfig:"JWT_ISSUER" default:"shipping"`
	JWTExpirationMinutes int    `envconfig:"JWT_EXPIRATION_MINUTES" default:"60"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to process configuration: %w", err)
	}
	return config, nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
