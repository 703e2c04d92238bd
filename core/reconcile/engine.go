package reconcile

import (
	"fmt"

	"gorm.io/gorm"
)

// Result reports what one reconciliation pass did.
type Result struct {
	Created int
	Updated int
	Skipped int
}

// Total returns the number of rows written.
func (r Result) Total() int {
	return r.Created + r.Updated
}

// Batch reconciles rows against the adapter's table, in the iteration order
// supplied by the caller. The batch is committed once; any persistence error
// aborts the remaining rows and rolls the batch back.
func Batch[R any](db *gorm.DB, rows []R, adapter Adapter[R]) (Result, error) {
	var res Result

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if adapter.Skip(row) {
				res.Skipped++
				continue
			}

			var count int64
			if err := adapter.Match(tx, row).Count(&count).Error; err != nil {
				return fmt.Errorf("key lookup failed: %w", err)
			}

			if count == 0 {
				if err := tx.Create(adapter.Record(row)).Error; err != nil {
					return fmt.Errorf("insert failed: %w", err)
				}
				res.Created++
				continue
			}

			if err := adapter.Match(tx, row).Updates(adapter.Values(row)).Error; err != nil {
				return fmt.Errorf("update failed: %w", err)
			}
			res.Updated++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}
