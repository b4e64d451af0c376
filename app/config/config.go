// Package config loads application configuration from environment
// variables, with optional .env file support for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"BLOG_DB_PATH" envDefault:"./data/badger"`
	ServerHost string `env:"BLOG_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"BLOG_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"BLOG_ENV" envDefault:"development"`

	// Seeding configuration: the account created by the seed command.
	AdminName     string `env:"BLOG_ADMIN_NAME" envDefault:"Administrator"`
	AdminEmail    string `env:"BLOG_ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"BLOG_ADMIN_PASSWORD"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load reads an optional .env file, then parses environment variables into
// a Config. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
