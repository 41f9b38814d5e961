package configs

import "time"

// Pipeline tunes the creative fetch pipeline.
type Pipeline struct {
	// PacingDelay is the pause between consecutive upstream batch chunks.
	PacingDelay time.Duration `env:"PACING_DELAY" envDefault:"1s"`
	// DownloadTimeout bounds a single asset download.
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT" envDefault:"30s"`
}
