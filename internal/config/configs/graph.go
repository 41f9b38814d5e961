package configs

import "time"

// Graph configures the ad platform API client.
type Graph struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	Version string        `env:"VERSION" envDefault:"v21.0"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
