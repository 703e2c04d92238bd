package auditlog

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"multivende-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWriteHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	log, err := Open(Config{Path: dir, Timezone: "UTC"}, "checkouts_log")
	assert.NoError(t, err)

	log.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	assert.NoError(t, log.Info("Job started", "Update checkouts job has started"))
	assert.NoError(t, log.Error("DB loading error", "The data load has failed"))

	file, err := os.Open(filepath.Join(dir, "checkouts_log.csv"))
	assert.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"timestamp", "level", "description", "message"}, rows[0])
	assert.Equal(t, "INFO", rows[1][1])
	assert.Equal(t, "2025-03-01T12:00:00Z", rows[1][0])
	assert.Equal(t, "ERROR", rows[2][1])
}

func TestWriteNamedTimezone(t *testing.T) {
	dir := t.TempDir()
	log, err := Open(Config{Path: dir, Timezone: "Chile/Continental"}, "deliveries_log")
	assert.NoError(t, err)

	assert.NoError(t, log.Info("Job started", "Update deliveries job has started"))

	data, err := os.ReadFile(log.Path())
	assert.NoError(t, err)
	// Timestamp must carry an offset, not a bare UTC instant
	assert.NotContains(t, string(data), "Z,INFO")
}

func TestOpenInvalidTimezone(t *testing.T) {
	_, err := Open(Config{Path: t.TempDir(), Timezone: "Not/AZone"}, "x")
	assert.Error(t, err)
}

func TestArchive(t *testing.T) {
	dir := t.TempDir()
	log, err := Open(Config{Path: dir, Timezone: "UTC"}, "checkouts_log")
	assert.NoError(t, err)
	assert.NoError(t, log.Info("Job started", "ok"))

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "audit-logs").Return(true, nil)
	client.On("PutObject", mock.Anything, "audit-logs", "audit/checkouts_log.csv",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	err = log.Archive(context.Background(), client, "audit-logs")
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchiveMissingFile(t *testing.T) {
	dir := t.TempDir()
	log, err := Open(Config{Path: dir, Timezone: "UTC"}, "never_written")
	assert.NoError(t, err)

	client := new(mocks.Client)
	err = log.Archive(context.Background(), client, "audit-logs")
	assert.Error(t, err)
}
