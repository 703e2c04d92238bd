package server

// Config holds configuration for the webhook HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5000"`
	// Username is the HTTP Basic auth user. Auth is disabled when both
	// Username and Password are empty.
	Username string `mapstructure:"username" default:""`
	// Password is the HTTP Basic auth password.
	Password string `mapstructure:"password" default:""`
}
