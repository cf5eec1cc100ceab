package configs

// HTTP defines configuration for the HTTP server started by the serve
// command.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
