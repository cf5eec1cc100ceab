package configs

// Schedule configures the serve command.
type Schedule struct {
	// Spec is a standard five field cron expression. Empty disables the
	// scheduler.
	Spec string `env:"SPEC" envDefault:"0 5 1,15 * *"`
}

// Metrics configures metric export of one-shot runs.
type Metrics struct {
	// PushgatewayURL receives run metrics when set.
	PushgatewayURL string `env:"PUSHGATEWAY_URL"`
}
