package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"multivende-sync/core/crypto"

	"gorm.io/gorm"
)

var (
	// ErrNoCredential reports an empty credential store. Fatal for the run.
	ErrNoCredential = errors.New("no credential available")
	// ErrCredentialExpired reports a credential past its grace window.
	// Fatal for the run; the refresh job must run first.
	ErrCredentialExpired = errors.New("credential expired")
)

// Store reads credentials and judges their freshness. It never triggers a
// refresh: "can I proceed" stays separate from "how do I get a new token".
type Store struct {
	db     *gorm.DB
	cipher *crypto.Cipher
	grace  time.Duration
}

// NewStore creates a store with the configured grace window.
func NewStore(db *gorm.DB, cipher *crypto.Cipher, cfg Config) *Store {
	grace := cfg.GraceHours
	if grace <= 0 {
		grace = 6
	}
	return &Store{
		db:     db,
		cipher: cipher,
		grace:  time.Duration(grace) * time.Hour,
	}
}

// Active returns the credential with the maximum expiry timestamp, or
// ErrNoCredential when the store is empty.
func (s *Store) Active(ctx context.Context) (*AuthApp, error) {
	var cred AuthApp
	err := s.db.WithContext(ctx).Order("expire DESC").First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential store: %w", err)
	}
	return &cred, nil
}

// IsExpired reports whether the credential is past the grace window:
// true exactly when now - expire > grace.
func (s *Store) IsExpired(cred *AuthApp, now time.Time) bool {
	return now.Sub(cred.Expire) > s.grace
}

// BearerToken resolves the active credential into a usable plaintext token.
// It returns ErrNoCredential or ErrCredentialExpired for the two conditions
// that abort a sync run.
func (s *Store) BearerToken(ctx context.Context, now time.Time) (string, error) {
	cred, err := s.Active(ctx)
	if err != nil {
		return "", err
	}
	if s.IsExpired(cred, now) {
		return "", ErrCredentialExpired
	}
	return s.cipher.Decrypt(cred.Token)
}
