package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adpulse/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Graph configures the ad platform client (GRAPH_ prefix).
	Graph configs.Graph `envPrefix:"GRAPH_"`

	// Storage configures the asset bucket (STORAGE_ prefix).
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Pipeline tunes batching and downloads (PIPELINE_ prefix).
	Pipeline configs.Pipeline `envPrefix:"PIPELINE_"`

	// AMQP configures the refresh queue (AMQP_ prefix).
	AMQP configs.AMQP `envPrefix:"AMQP_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment take precedence.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
