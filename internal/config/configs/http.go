package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins lists the origins permitted by the CORS middleware.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	// ReadTimeout bounds reading a full request including its body.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout bounds writing the response. Batch requests pace their
	// upstream calls, so it is generous.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5m"`
}
