package delivery

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"multivende-sync/core/auditlog"
	"multivende-sync/core/reconcile"
	"multivende-sync/feature/checkout"
	"multivende-sync/feature/multivende"
)

// Syncer re-reads recent sales one by one and reconciles their delivery
// orders into the deliverys table.
type Syncer struct {
	db     *gorm.DB
	api    *multivende.Client
	logger *zap.Logger
	audit  *auditlog.Log
	now    func() time.Time
}

func NewSyncer(db *gorm.DB, api *multivende.Client, logger *zap.Logger, audit *auditlog.Log) *Syncer {
	return &Syncer{
		db:     db,
		api:    api,
		logger: logger,
		audit:  audit,
		now:    time.Now,
	}
}

// Sync walks every sale sold in the last lookback days, as already
// mirrored in the checkouts table, and reconciles one row per shippable
// delivery order. Sales that fail to fetch or have no delivery yet are
// skipped without failing the sweep.
func (s *Syncer) Sync(ctx context.Context, lookbackDays int) (reconcile.Result, error) {
	cutoff := s.now().AddDate(0, 0, -lookbackDays)

	var ids []string
	err := s.db.WithContext(ctx).Model(&checkout.Checkout{}).
		Where("fecha >= ?", cutoff).
		Distinct("id_venta").
		Pluck("id_venta", &ids).Error
	if err != nil {
		return reconcile.Result{}, fmt.Errorf("failed to list recent sales: %w", err)
	}
	s.logger.Info("Refreshing deliveries", zap.Int("sales", len(ids)))

	seen := make(map[string]bool, len(ids))
	var rows []Delivery
	for _, id := range ids {
		rec, err := s.api.FetchCheckout(ctx, id)
		if err != nil {
			s.logger.Warn("Skipping sale", zap.String("checkout_id", id), zap.Error(err))
			s.note(s.audit.Warning, "deliverys", err.Error())
			continue
		}
		sum, _, err := checkout.Normalize(rec, nil)
		if err != nil {
			s.logger.Warn("Skipping malformed sale", zap.String("checkout_id", id), zap.Error(err))
			s.note(s.audit.Warning, "deliverys", err.Error())
			continue
		}
		row, ok := Build(sum)
		if !ok {
			continue
		}
		key := row.SaleID + "\x00" + row.OrderNumber
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, row)
	}

	result, err := reconcile.Batch(s.db, rows, Adapter{})
	if err != nil {
		s.note(s.audit.Error, "deliverys", err.Error())
		return result, fmt.Errorf("failed to reconcile deliverys: %w", err)
	}
	s.logger.Info("Reconciled",
		zap.String("table", "deliverys"),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))
	s.note(s.audit.Info, "deliverys",
		fmt.Sprintf("created=%d updated=%d skipped=%d", result.Created, result.Updated, result.Skipped))
	return result, nil
}

func (s *Syncer) note(write func(string, string) error, description, message string) {
	if s.audit == nil {
		return
	}
	if err := write(description, message); err != nil {
		s.logger.Warn("Failed to write audit entry", zap.Error(err))
	}
}
