package credential_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"multivende-sync/core/crypto"
	"multivende-sync/core/database"
	"multivende-sync/feature/credential"
	"multivende-sync/feature/multivende"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newStore(t *testing.T) (*gorm.DB, *credential.Store, *crypto.Cipher) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&credential.AuthApp{}))

	cipher, err := crypto.New("test-secret")
	require.NoError(t, err)

	return db, credential.NewStore(db, cipher, credential.Config{GraceHours: 6}), cipher
}

func seed(t *testing.T, db *gorm.DB, cipher *crypto.Cipher, token string, expire time.Time, refresh string) {
	t.Helper()
	blob, err := cipher.Encrypt(token)
	require.NoError(t, err)
	require.NoError(t, db.Create(&credential.AuthApp{
		Token:        blob,
		Expire:       expire,
		RefreshToken: refresh,
	}).Error)
}

func TestActiveReturnsMaxExpiry(t *testing.T) {
	db, store, cipher := newStore(t)
	now := time.Now().UTC()

	seed(t, db, cipher, "older", now.Add(-48*time.Hour), "r1")
	seed(t, db, cipher, "newest", now.Add(1*time.Hour), "r2")
	seed(t, db, cipher, "middle", now.Add(-24*time.Hour), "r3")

	cred, err := store.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "r2", cred.RefreshToken)
}

func TestActiveEmptyStore(t *testing.T) {
	_, store, _ := newStore(t)

	_, err := store.Active(context.Background())
	assert.ErrorIs(t, err, credential.ErrNoCredential)
}

func TestIsExpiredGraceBoundary(t *testing.T) {
	_, store, _ := newStore(t)
	expire := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cred := &credential.AuthApp{Expire: expire}

	// False at exactly six hours minus one second past expiry
	assert.False(t, store.IsExpired(cred, expire.Add(6*time.Hour-time.Second)))
	assert.False(t, store.IsExpired(cred, expire.Add(6*time.Hour)))
	assert.True(t, store.IsExpired(cred, expire.Add(6*time.Hour+time.Second)))

	// A credential ahead of its expiry is never stale
	assert.False(t, store.IsExpired(cred, expire.Add(-time.Hour)))
}

func TestBearerToken(t *testing.T) {
	db, store, cipher := newStore(t)
	now := time.Now().UTC()

	seed(t, db, cipher, "plain-bearer", now.Add(1*time.Hour), "r1")

	token, err := store.BearerToken(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, "plain-bearer", token)
}

func TestBearerTokenExpired(t *testing.T) {
	db, store, cipher := newStore(t)
	now := time.Now().UTC()

	seed(t, db, cipher, "stale", now.Add(-7*time.Hour), "r1")

	_, err := store.BearerToken(context.Background(), now)
	assert.ErrorIs(t, err, credential.ErrCredentialExpired)
}

func TestRefreshAppendsCredential(t *testing.T) {
	db, store, cipher := newStore(t)
	now := time.Now().UTC()
	seed(t, db, cipher, "old-token", now.Add(-7*time.Hour), "old-refresh")

	var gotRefresh string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, jsonDecode(r, &body))
		gotRefresh = body["refresh_token"]
		fmt.Fprintf(w, `{"token":"fresh-token","expiresAt":%q,"refreshToken":"next-refresh"}`,
			now.Add(10*time.Hour).Format(time.RFC3339))
	}))
	defer srv.Close()

	api := multivende.NewClient(multivende.Config{BaseURL: srv.URL, ClientID: "c", ClientSecret: "s"}, "", zap.NewNop())
	refresher := credential.NewRefresher(db, cipher, api, zap.NewNop())

	require.NoError(t, refresher.Refresh(context.Background()))
	assert.Equal(t, "old-refresh", gotRefresh)

	// History is append-only: two rows, newest is now active and usable
	var n int64
	db.Model(&credential.AuthApp{}).Count(&n)
	assert.EqualValues(t, 2, n)

	token, err := store.BearerToken(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
