package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var (
	ErrInvalidName = errors.New("invalid blob name")
	ErrExists      = errors.New("blob already exists")
)

// Store is durable byte storage addressed by a flat, generated name.
// Put never overwrites; Delete of a missing blob is not an error.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Exists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	// URL is where browsers fetch the blob from.
	URL(name string) string
}

const (
	BackendLocal = "local"
	BackendMinio = "minio"
	BackendGCS   = "gcs"
)

type Config struct {
	Backend   string
	PublicURL string

	LocalDir string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	GCSBucket string
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendLocal:
		return NewLocalStore(cfg.LocalDir, cfg.PublicURL)
	case BackendMinio:
		return NewMinioStore(ctx, MinioConfig{
			Endpoint:        cfg.MinioEndpoint,
			AccessKeyID:     cfg.MinioAccessKey,
			SecretAccessKey: cfg.MinioSecretKey,
			BucketName:      cfg.MinioBucket,
			UseSSL:          cfg.MinioUseSSL,
			PublicURL:       cfg.PublicURL,
		})
	case BackendGCS:
		return NewGCSStore(ctx, cfg.GCSBucket, cfg.PublicURL)
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.Backend)
	}
}

// ValidateName rejects anything that is not a single path element.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || path.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func joinURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/" + name
}
