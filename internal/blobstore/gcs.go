package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
)

// GCSStore keeps blobs as objects at the root of one Cloud Storage bucket.
// Credentials come from the environment (ADC).
type GCSStore struct {
	client    *storage.Client
	bucket    *storage.BucketHandle
	publicURL string
}

func NewGCSStore(ctx context.Context, bucket, publicURL string) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("missing GCS bucket name")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if publicURL == "" {
		publicURL = "https://storage.googleapis.com/" + bucket
	}
	return &GCSStore{client: client, bucket: client.Bucket(bucket), publicURL: publicURL}, nil
}

func (s *GCSStore) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	w := s.bucket.Object(name).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		return fmt.Errorf("failed to finalize object: %w", err)
	}
	return nil
}

func (s *GCSStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	_, err := s.bucket.Object(name).Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	return false, err
}

func (s *GCSStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	err := s.bucket.Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}

func (s *GCSStore) List(ctx context.Context) ([]string, error) {
	var names []string
	it := s.bucket.Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, attrs.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *GCSStore) URL(name string) string {
	return joinURL(s.publicURL, name)
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
