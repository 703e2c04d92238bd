// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: webhook HTTP server settings (port, basic auth)
//   - Database: MySQL connection details
//   - Log: logging level and format
//   - Audit: CSV audit trail path and timezone
//   - Storage: S3/MinIO credentials for audit archiving
//   - API: Multivende REST API endpoint and OAuth application
//   - Auth: credential store secret and staleness grace
//   - Sync: batch job lookback windows
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
