package auditlog

// Config holds configuration for the CSV audit trail.
type Config struct {
	// Path is the directory the CSV log files are written to.
	Path string `mapstructure:"path" default:"./logs"`
	// Timezone is the named timezone used for the timestamp column.
	Timezone string `mapstructure:"timezone" default:"Chile/Continental"`
}
