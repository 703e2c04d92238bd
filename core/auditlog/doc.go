// Package auditlog writes the append-only CSV audit trail the sync jobs
// produce alongside their structured logs.
//
// Each job owns one file (checkouts_log.csv, deliveries_log.csv) with columns
// timestamp, level, description, message. The header row is written exactly
// once, when the file is created. Timestamps use a configured named timezone
// so operators read local wall-clock times.
//
// When an archive bucket is configured, the file is additionally uploaded to
// S3-compatible storage at the end of a job via Archive. Archiving is
// best-effort: failures are logged, never fatal.
package auditlog
