package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"pixel-match/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// AppName prefixes log and result file names.
	AppName string `env:"APP_NAME" envDefault:"pixel_match"`

	// Workers caps the number of pixels queried at the same time. Zero or
	// less runs every pixel of a run at once.
	Workers int `env:"WORKERS" envDefault:"0"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Discovery configs.Discovery `envPrefix:"DISCOVERY_"`
	Jira      configs.Jira      `envPrefix:"JIRA_"`
	Engine    configs.Engine    `envPrefix:"ENGINE_"`
	Mail      configs.Mail      `envPrefix:"MAIL_"`
	Archive   configs.Archive   `envPrefix:"ARCHIVE_"`
	Schedule  configs.Schedule  `envPrefix:"SCHEDULE_"`
	Metrics   configs.Metrics   `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings a match run cannot do without.
func (c Config) Validate() error {
	var errs []error
	if c.Discovery.URL == "" {
		errs = append(errs, errors.New("DISCOVERY_URL is required"))
	}
	if c.Jira.URL == "" {
		errs = append(errs, errors.New("JIRA_URL is required"))
	}
	if c.Engine.Token == "" {
		errs = append(errs, errors.New("ENGINE_TOKEN is required"))
	}
	if c.Engine.Attempts < 1 {
		errs = append(errs, fmt.Errorf("ENGINE_ATTEMPTS must be at least 1, got %d", c.Engine.Attempts))
	}
	if c.Engine.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("ENGINE_POLL_INTERVAL must not be negative, got %s", c.Engine.PollInterval))
	}
	if len(c.Mail.To) == 0 {
		errs = append(errs, errors.New("MAIL_TO is required"))
	}
	return errors.Join(errs...)
}
