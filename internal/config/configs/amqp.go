package configs

// AMQP configures the refresh job queue. An empty URL disables publishing.
type AMQP struct {
	URL      string `env:"URL"`
	Queue    string `env:"QUEUE" envDefault:"creative_refresh"`
	Prefetch int    `env:"PREFETCH" envDefault:"4"`
}
