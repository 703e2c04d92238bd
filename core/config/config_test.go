package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Chile/Continental", cfg.Audit.Timezone)
	assert.Equal(t, "https://app.multivende.com", cfg.API.BaseURL)
	assert.Equal(t, 6, cfg.Auth.GraceHours)
	assert.Equal(t, 1, cfg.Sync.Days)
	assert.Equal(t, 20, cfg.Sync.DeliveryDays)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("API_MERCHANT_ID", "m-42")
	t.Setenv("SYNC_DAYS", "7")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "m-42", cfg.API.MerchantID)
	assert.Equal(t, 7, cfg.Sync.Days)
}
