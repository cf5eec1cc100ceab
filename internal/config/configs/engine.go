package configs

import "time"

// Engine configures the queue based query service.
type Engine struct {
	URL          string        `env:"URL" envDefault:"https://api.qubole.com"`
	Token        string        `env:"TOKEN"`
	ClusterLabel string        `env:"CLUSTER_LABEL" envDefault:"default"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
	// Attempts is the number of fresh submissions made for one query.
	Attempts int `env:"ATTEMPTS" envDefault:"3"`
	// RetryMax bounds transport level retries of single HTTP calls.
	RetryMax int `env:"RETRY_MAX" envDefault:"3"`
}
