package credential

import (
	"context"
	"fmt"
	"time"

	"multivende-sync/core/crypto"
	"multivende-sync/feature/multivende"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Refresher rotates the bearer credential: it exchanges the most recent
// refresh token for a new grant and appends it to the history.
type Refresher struct {
	db     *gorm.DB
	cipher *crypto.Cipher
	api    *multivende.Client
	logger *zap.Logger
}

// NewRefresher wires the refresh job.
func NewRefresher(db *gorm.DB, cipher *crypto.Cipher, api *multivende.Client, logger *zap.Logger) *Refresher {
	return &Refresher{db: db, cipher: cipher, api: api, logger: logger}
}

// Refresh performs one rotation. The latest credential is used even when its
// bearer token already lapsed: the refresh grant outlives it.
func (r *Refresher) Refresh(ctx context.Context) error {
	var last AuthApp
	err := r.db.WithContext(ctx).Order("expire DESC").First(&last).Error
	if err != nil {
		return fmt.Errorf("no refresh token available: %w", err)
	}

	grant, err := r.api.RefreshAccessToken(ctx, last.RefreshToken)
	if err != nil {
		return fmt.Errorf("token refresh failed: %w", err)
	}

	expire, err := time.Parse(time.RFC3339, grant.ExpiresAt)
	if err != nil {
		return fmt.Errorf("grant carries invalid expiry %q: %w", grant.ExpiresAt, err)
	}

	encrypted, err := r.cipher.Encrypt(grant.Token)
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}

	cred := AuthApp{
		Token:        encrypted,
		Expire:       expire.UTC(),
		RefreshToken: grant.RefreshToken,
	}
	if err := r.db.WithContext(ctx).Create(&cred).Error; err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	r.logger.Info("Credential rotated", zap.Time("expires", cred.Expire))
	return nil
}
