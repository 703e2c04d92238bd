package credential

// Config holds configuration for the credential store.
type Config struct {
	// SecretKey protects the stored bearer token at rest.
	SecretKey string `mapstructure:"secret_key" default:""`
	// GraceHours is how long past its recorded expiry a credential is still
	// considered usable. The marketplace honors tokens well beyond the
	// advertised instant; 6 hours matches the refresh cadence.
	GraceHours int `mapstructure:"grace_hours" default:"6"`
}
