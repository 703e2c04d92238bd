package product

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"multivende-sync/core/auditlog"
	"multivende-sync/core/reconcile"
	"multivende-sync/feature/multivende"
)

// Syncer mirrors the product catalog into the products and attributes
// tables.
type Syncer struct {
	db     *gorm.DB
	api    *multivende.Client
	logger *zap.Logger
	audit  *auditlog.Log
}

func NewSyncer(db *gorm.DB, api *multivende.Client, logger *zap.Logger, audit *auditlog.Log) *Syncer {
	return &Syncer{db: db, api: api, logger: logger, audit: audit}
}

// Sync walks the whole catalog: the attribute name catalog first, then the
// light product list for ids, then one detail fetch per product. Products
// that fail to fetch or normalize are logged and skipped.
func (s *Syncer) Sync(ctx context.Context) (reconcile.Result, error) {
	catalogRec, err := s.api.FetchProductAttributes(ctx)
	if err != nil {
		s.note(s.audit.Error, "products", err.Error())
		return reconcile.Result{}, fmt.Errorf("failed to fetch attribute catalog: %w", err)
	}
	catalog := BuildCatalog(catalogRec)

	entries, err := s.api.FetchCollection(ctx, "products/light", nil)
	if err != nil {
		s.note(s.audit.Error, "products", err.Error())
		return reconcile.Result{}, fmt.Errorf("failed to list products: %w", err)
	}
	s.logger.Info("Fetched product list", zap.Int("count", len(entries)))

	var rows []Row
	for _, entry := range entries {
		id, ok := entry.String("_id")
		if !ok {
			continue
		}
		rec, err := s.api.FetchProduct(ctx, id)
		if err != nil {
			s.logger.Warn("Skipping product", zap.String("product_id", id), zap.Error(err))
			s.note(s.audit.Warning, "products", err.Error())
			continue
		}
		productRows, err := Normalize(rec, catalog)
		if err != nil {
			s.logger.Warn("Skipping malformed product", zap.String("product_id", id), zap.Error(err))
			s.note(s.audit.Warning, "products", err.Error())
			continue
		}
		rows = append(rows, productRows...)
	}

	result, err := reconcile.Batch(s.db, rows, Adapter{})
	if err != nil {
		s.note(s.audit.Error, "products", err.Error())
		return result, fmt.Errorf("failed to reconcile products: %w", err)
	}
	if err := s.replaceAttributes(ctx, rows); err != nil {
		s.note(s.audit.Error, "attributes", err.Error())
		return result, fmt.Errorf("failed to reconcile attributes: %w", err)
	}

	s.logger.Info("Reconciled",
		zap.String("table", "products"),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))
	s.note(s.audit.Info, "products",
		fmt.Sprintf("created=%d updated=%d skipped=%d", result.Created, result.Updated, result.Skipped))
	return result, nil
}

// replaceAttributes rewrites every synced product's attribute set: old
// links dropped, the new snapshot inserted. One transaction for the whole
// batch.
func (s *Syncer) replaceAttributes(ctx context.Context, rows []Row) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if row.Product.ParentID == "" || row.Product.ChildID == "" {
				continue
			}
			var p Product
			err := tx.Where("id_padre = ? AND id_hijo = ?", row.Product.ParentID, row.Product.ChildID).
				First(&p).Error
			if err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", p.ID).Delete(&Attribute{}).Error; err != nil {
				return err
			}
			for _, attr := range row.Attrs {
				attr.ProductID = p.ID
				if err := tx.Create(&attr).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *Syncer) note(write func(string, string) error, description, message string) {
	if s.audit == nil {
		return
	}
	if err := write(description, message); err != nil {
		s.logger.Warn("Failed to write audit entry", zap.Error(err))
	}
}
