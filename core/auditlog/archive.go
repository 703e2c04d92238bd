package auditlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"multivende-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive uploads the CSV file to the configured bucket. It is a best-effort
// end-of-job step: callers log the returned error instead of failing the run.
func (l *Log) Archive(ctx context.Context, client storage.Client, bucket string) error {
	file, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("failed to open audit log for archiving: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat audit log: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create archive bucket: %w", err)
		}
	}

	object := "audit/" + filepath.Base(l.path)
	_, err = client.PutObject(ctx, bucket, object, file, stat.Size(), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload audit log: %w", err)
	}

	return nil
}
