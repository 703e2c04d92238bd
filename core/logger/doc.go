// Package logger provides a structured logging facility based on Zap.
//
// Batch sync jobs and the webhook server share the same logger factory.
// The CSV audit trail (core/auditlog) is written in addition to, not instead
// of, the zap output.
//
// # Context Awareness
//
// Webhook requests carry a RayID (request id). The WithRayID helper extracts
// it from a Fiber context and attaches it to the log entry so that all logs
// related to a specific request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
