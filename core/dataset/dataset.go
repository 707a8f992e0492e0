package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"codegap/core/storage"

	"github.com/minio/minio-go/v7"
)

const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
)

// ErrUnknownSource is returned by New for an unsupported Config.Source.
var ErrUnknownSource = errors.New("unknown dataset source")

// Source opens named tables for reading. Callers must close what they open.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// New builds the Source selected by cfg. client is only used for the
// bucket source and may be nil otherwise.
func New(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceLocal, "":
		return Local{Root: cfg.Root}, nil
	case SourceBucket:
		if client == nil {
			return nil, errors.New("bucket dataset source requires a storage client")
		}
		return NewBucket(client, bucket), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// Local reads tables from the filesystem.
type Local struct {
	// Root is joined in front of relative names when set.
	Root string
}

// Open opens name on disk.
func (l Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := name
	if l.Root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(l.Root, p)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	return f, nil
}

// Bucket reads tables from an object storage bucket.
type Bucket struct {
	client storage.Client
	bucket string
}

// NewBucket creates a bucket-backed source.
func NewBucket(client storage.Client, bucket string) *Bucket {
	return &Bucket{client: client, bucket: bucket}
}

// Open fetches the object for name. See ObjectKey for the name mapping.
func (b *Bucket) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", b.bucket)
	}

	key := ObjectKey(name)
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	return obj, nil
}

// ObjectKey maps a filesystem-style name to an object key: slashes are
// normalized, and leading "/", "./" and "../" segments are dropped, so the
// default "../data/x.csv" paths resolve to "data/x.csv".
func ObjectKey(name string) string {
	key := path.Clean(filepath.ToSlash(name))
	for {
		switch {
		case strings.HasPrefix(key, "../"):
			key = key[len("../"):]
		case strings.HasPrefix(key, "/"):
			key = key[1:]
		default:
			return key
		}
	}
}
