// Package storage wraps the MinIO Go client for reading datasets out of an
// S3-compatible bucket (AWS S3 or self-hosted MinIO).
//
// The Client interface only carries what the bucket dataset source needs,
// which keeps the testify mock in core/storage/mocks small.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "trade-data")
//	obj, err := client.GetObject(ctx, "trade-data", "data/CITIES_data.csv", minio.GetObjectOptions{})
package storage
