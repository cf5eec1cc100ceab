package configs

// Mail configures alert delivery.
type Mail struct {
	// Addr is the SMTP relay host:port.
	Addr    string   `env:"ADDR" envDefault:"localhost:25"`
	Subject string   `env:"SUBJECT" envDefault:"Pixel match alert"`
	From    string   `env:"FROM"`
	To      []string `env:"TO" envSeparator:","`
	Cc      []string `env:"CC" envSeparator:","`
}
