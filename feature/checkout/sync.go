package checkout

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"multivende-sync/core/auditlog"
	"multivende-sync/core/reconcile"
	"multivende-sync/feature/multivende"
)

// The full sweep re-reads a fixed window around now by modification date,
// so edits to older sales are still caught.
const (
	fullLookbackDays  = 3
	fullLookaheadDays = 2
)

// Syncer pulls checkout payloads from the marketplace and reconciles them
// into the mirror tables.
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

// SyncCheckouts sweeps the last days of sales by sale date and reconciles
// one row per sale and product into the checkouts table.
func (s *Syncer) SyncCheckouts(ctx context.Context, days int) (reconcile.Result, error) {
	now := s.now()
	window := &multivende.Window{
		Field: multivende.SoldAt,
		From:  now.AddDate(0, 0, -days),
		To:    now,
	}

	lines, _, err := s.collect(ctx, window)
	if err != nil {
		return reconcile.Result{}, err
	}

	result, err := reconcile.Batch(s.db, lines, LineAdapter{})
	if err != nil {
		s.note(s.audit.Error, "checkouts", err.Error())
		return result, fmt.Errorf("failed to reconcile checkouts: %w", err)
	}
	s.report("checkouts", result)
	return result, nil
}

// FullResult carries the outcome of a full sweep, one result per table.
type FullResult struct {
	Sales reconcile.Result
	Items reconcile.Result
}

// SyncFull sweeps sales modified in a window around now and reconciles the
// checkouts_full and checkout_items tables.
func (s *Syncer) SyncFull(ctx context.Context) (FullResult, error) {
	now := s.now()
	window := &multivende.Window{
		Field: multivende.UpdatedAt,
		From:  now.AddDate(0, 0, -fullLookbackDays),
		To:    now.AddDate(0, 0, fullLookaheadDays),
	}

	lines, sums, err := s.collect(ctx, window)
	if err != nil {
		return FullResult{}, err
	}
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, line.Item)
	}

	var out FullResult
	out.Sales, err = reconcile.Batch(s.db, sums, FullAdapter{})
	if err != nil {
		s.note(s.audit.Error, "checkouts_full", err.Error())
		return out, fmt.Errorf("failed to reconcile checkouts_full: %w", err)
	}
	s.report("checkouts_full", out.Sales)

	out.Items, err = reconcile.Batch(s.db, items, ItemAdapter{})
	if err != nil {
		s.note(s.audit.Error, "checkout_items", err.Error())
		return out, fmt.Errorf("failed to reconcile checkout_items: %w", err)
	}
	s.report("checkout_items", out.Items)
	return out, nil
}

// LoadCheckout fetches a single sale by id and reconciles it into the
// checkouts_full and checkout_items tables. This is the webhook path; the
// line-grain checkouts table stays owned by the batch sweep.
func (s *Syncer) LoadCheckout(ctx context.Context, id string) error {
	rec, err := s.api.FetchCheckout(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch checkout %s: %w", id, err)
	}

	sum, items, err := s.normalize(ctx, rec)
	if err != nil {
		return err
	}

	if _, err := reconcile.Batch(s.db, []*Summary{sum}, FullAdapter{}); err != nil {
		return fmt.Errorf("failed to reconcile checkout %s: %w", id, err)
	}
	if _, err := reconcile.Batch(s.db, items, ItemAdapter{}); err != nil {
		return fmt.Errorf("failed to reconcile checkout %s items: %w", id, err)
	}
	s.logger.Info("Checkout loaded", zap.String("checkout_id", id), zap.Int("items", len(items)))
	return nil
}

// collect sweeps the window and normalizes every sale in it. The light
// collection only carries ids; the nested payload (Client, items, delivery
// order) comes from one full fetch per id. A sale that fails to fetch or
// normalize is logged and dropped, never failing the sweep.
func (s *Syncer) collect(ctx context.Context, window *multivende.Window) ([]Line, []*Summary, error) {
	entries, err := s.api.FetchCollection(ctx, "checkouts/light", window)
	if err != nil {
		s.note(s.audit.Error, "checkouts", err.Error())
		return nil, nil, fmt.Errorf("failed to fetch checkouts: %w", err)
	}
	s.logger.Info("Fetched checkouts", zap.Int("count", len(entries)))

	var lines []Line
	var sums []*Summary
	for _, entry := range entries {
		id, ok := entry.String("_id")
		if !ok {
			continue
		}
		rec, err := s.api.FetchCheckout(ctx, id)
		if err != nil {
			s.logger.Warn("Skipping sale", zap.String("checkout_id", id), zap.Error(err))
			s.note(s.audit.Warning, "checkouts", err.Error())
			continue
		}
		sum, items, err := s.normalize(ctx, rec)
		if err != nil {
			s.logger.Warn("Dropping malformed checkout", zap.Error(err))
			s.note(s.audit.Warning, "checkouts", err.Error())
			continue
		}
		sums = append(sums, sum)
		for _, item := range items {
			lines = append(lines, Line{Sale: sum, Item: item})
		}
	}
	return lines, sums, nil
}

// normalize flattens one raw payload, enriching it with billing document
// data first. Billing lookups are best effort; on failure the billing
// columns stay null.
func (s *Syncer) normalize(ctx context.Context, rec multivende.Record) (*Summary, []Item, error) {
	var billing multivende.Record
	if id, ok := rec.String("_id"); ok {
		var err error
		billing, err = s.api.FetchBillingDocuments(ctx, id)
		if err != nil {
			s.logger.Warn("No billing information", zap.String("checkout_id", id), zap.Error(err))
			billing = nil
		}
	}
	return Normalize(rec, billing)
}

func (s *Syncer) report(table string, result reconcile.Result) {
	s.logger.Info("Reconciled",
		zap.String("table", table),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped))
	s.note(s.audit.Info, table,
		fmt.Sprintf("created=%d updated=%d skipped=%d", result.Created, result.Updated, result.Skipped))
}

func (s *Syncer) note(write func(string, string) error, description, message string) {
	if s.audit == nil {
		return
	}
	if err := write(description, message); err != nil {
		s.logger.Warn("Failed to write audit entry", zap.Error(err))
	}
}
