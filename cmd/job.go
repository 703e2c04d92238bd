package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"multivende-sync/core/auditlog"
	"multivende-sync/core/config"
	"multivende-sync/core/crypto"
	"multivende-sync/core/database"
	"multivende-sync/core/logger"
	"multivende-sync/core/storage"
	"multivende-sync/feature/credential"
	"multivende-sync/feature/multivende"
)

// jobEnv is the shared runtime of one batch run: config, logger, database
// and CSV audit trail.
type jobEnv struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	audit  *auditlog.Log
}

// newJobEnv boots everything a batch job needs. name picks the audit CSV
// file; a failed audit open is logged but never blocks the run.
func newJobEnv(name string) (*jobEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	audit, err := auditlog.Open(cfg.Audit, name)
	if err != nil {
		logg.Warn("Audit trail unavailable", zap.Error(err))
		audit = nil
	}

	return &jobEnv{cfg: cfg, logger: logg, db: db, audit: audit}, nil
}

// bearer runs the credential gate. A missing or expired credential ends
// the run cleanly: the reason is logged and audited, ok is false and no
// error propagates, so the process exits zero and the next scheduled run
// retries.
func (e *jobEnv) bearer(ctx context.Context) (token string, ok bool, err error) {
	cipher, err := crypto.New(e.cfg.Auth.SecretKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to build token cipher: %w", err)
	}
	store := credential.NewStore(e.db, cipher, e.cfg.Auth)

	token, err = store.BearerToken(ctx, time.Now())
	switch {
	case errors.Is(err, credential.ErrNoCredential):
		e.logger.Error("Failed authentication: no credential stored")
		e.note(e.audit.Error, "auth", "no credential")
		return "", false, nil
	case errors.Is(err, credential.ErrCredentialExpired):
		e.logger.Warn("Refresh token expired")
		e.note(e.audit.Warning, "auth", "credential expired")
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to read credential: %w", err)
	}
	return token, true, nil
}

// api builds a one-run API client around a bearer token.
func (e *jobEnv) api(token string) *multivende.Client {
	return multivende.NewClient(e.cfg.API, token, e.logger)
}

// finish closes out a run: audit the elapsed time and archive the CSV when
// a bucket is configured. Both are best effort.
func (e *jobEnv) finish(ctx context.Context, started time.Time) {
	e.note(e.audit.Info, "run", fmt.Sprintf("elapsed=%s", time.Since(started).Round(time.Millisecond)))

	if e.audit == nil || !e.cfg.Storage.Enabled() {
		return
	}
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		e.logger.Warn("Audit archive skipped", zap.Error(err))
		return
	}
	if err := e.audit.Archive(ctx, client, e.cfg.Storage.Bucket); err != nil {
		e.logger.Warn("Failed to archive audit trail", zap.Error(err))
		return
	}
	e.logger.Info("Audit trail archived", zap.String("bucket", e.cfg.Storage.Bucket))
}

func (e *jobEnv) note(write func(string, string) error, description, message string) {
	if e.audit == nil {
		return
	}
	if err := write(description, message); err != nil {
		e.logger.Warn("Failed to write audit entry", zap.Error(err))
	}
}
