// Package dataset abstracts where the reference and records tables live.
//
// # Sources
//
//   - Local opens files on disk. Relative names are joined to Root when one
//     is set, otherwise they resolve against the working directory, so the
//     default "../data/..." paths behave as they do from a checkout.
//   - Bucket reads the same names out of an S3/MinIO bucket through
//     core/storage. ObjectKey strips leading "../", "./" and "/" so a path
//     written for the local source maps onto a key inside the bucket.
//
// Both return an io.ReadCloser the caller closes once the table has been
// read. A missing file or object surfaces as an error on Open, before any
// row is read.
//
// # Configuration
//
//	DATA_SOURCE=bucket   # or local
//	DATA_ROOT=/srv/trade
//
// # Usage
//
//	src, err := dataset.New(cfg.Data, client, cfg.Storage.Bucket)
//	rc, err := src.Open(ctx, cfg.CodeGap.RecordsPath)
//	defer rc.Close()
package dataset
