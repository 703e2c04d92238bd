// Package reconcile implements the upsert pass that brings persisted rows in
// line with freshly fetched marketplace state.
//
// Each target table supplies an Adapter that knows the table's composite
// business key and its full column set. The engine walks the normalized rows
// in caller order, looks each one up by key, inserts new rows and overwrites
// matched ones unconditionally. There is no field-level change detection:
// the marketplace is the source of truth and the local store is a
// read-optimized mirror, so staleness is resolved by last-write-wins.
//
// The whole batch runs in one transaction. A failure partway through rolls
// back and surfaces to the caller; re-running the sync is the retry
// mechanism, which is safe because the pass is idempotent per key.
package reconcile
