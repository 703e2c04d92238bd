// Package database handles database connections for the sync jobs.
//
// It provides a wrapper around GORM that configures MySQL connections from
// the application's configuration, including the optional CA certificate the
// managed database requires, connection recycling and I/O timeouts.
//
// # Drivers
//
// Production runs use the mysql driver. Tests use the sqlite driver with an
// in-memory database:
//
//	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
//
// Schema creation is not handled here: the sync jobs treat the tables as
// pre-existing state owned by the wider application.
package database
