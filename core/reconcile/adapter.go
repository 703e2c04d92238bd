package reconcile

import "gorm.io/gorm"

// Adapter maps normalized rows of type R onto one persisted table.
type Adapter[R any] interface {
	// Match scopes tx to the row's business key. Every key column must be
	// compared individually; the key is a genuine multi-column equality.
	Match(tx *gorm.DB, row R) *gorm.DB

	// Record builds the model inserted for a previously unseen key.
	Record(row R) any

	// Values lists every mutable column for the full-overwrite update of a
	// matched row.
	Values(row R) map[string]any

	// Skip reports whether the row is dropped before reconciliation
	// (incomplete or test data).
	Skip(row R) bool
}
