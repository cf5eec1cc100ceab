package configs

import "time"

// Discovery configures the pixel catalog API.
type Discovery struct {
	URL      string        `env:"URL"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
	RetryMax int           `env:"RETRY_MAX" envDefault:"3"`
}
