package config

import (
	"reflect"
	"strings"

	"multivende-sync/core/auditlog"
	"multivende-sync/core/database"
	"multivende-sync/core/logger"
	"multivende-sync/core/server"
	"multivende-sync/core/storage"
	"multivende-sync/feature/credential"
	"multivende-sync/feature/multivende"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SyncConfig holds the time windows the batch jobs sweep.
type SyncConfig struct {
	// Days is the sold-at lookback of the checkouts sync.
	Days int `mapstructure:"days" default:"1"`
	// DeliveryDays is the sold-at lookback used to pick sales whose
	// deliveries get refreshed.
	DeliveryDays int `mapstructure:"delivery_days" default:"20"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the webhook HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Audit holds configuration for the CSV audit trail.
	Audit auditlog.Config `mapstructure:"audit"`
	// Storage holds configuration for the audit archive storage.
	Storage storage.Config `mapstructure:"storage"`
	// API holds configuration for the Multivende REST API.
	API multivende.Config `mapstructure:"api"`
	// Auth holds configuration for the credential store.
	Auth credential.Config `mapstructure:"auth"`
	// Sync holds the batch job windows.
	Sync SyncConfig `mapstructure:"sync"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATABASE_HOST -> database.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
