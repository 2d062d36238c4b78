package image

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"coursematerials/internal/blobstore"
	"coursematerials/internal/metrics"
	"coursematerials/internal/pkg/logger"
)

const (
	MaxFileSize = 5 * 1024 * 1024 // 5 MiB
	namePrefix  = "img_"
	nameTries   = 3
)

// AllowedExtensions maps accepted (lowercase) extensions to the content type
// the blob is stored with.
var AllowedExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// Manager owns the link between a material's image_path and the blob store:
// it stores accepted uploads under fresh names and releases blobs that are no
// longer referenced.
type Manager struct {
	store   blobstore.Store
	log     *logger.Logger
	newName func(ext string) string
}

func NewManager(store blobstore.Store, log *logger.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log.With("service", "ImageManager"),
		newName: func(ext string) string {
			return namePrefix + uuid.New().String() + "." + ext
		},
	}
}

// Check applies the size and extension rules without touching the store and
// returns the normalised extension.
func (m *Manager) Check(u *Upload) (string, error) {
	if u == nil {
		return "", ErrBadExtension
	}
	if u.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(u.Name), "."))
	if _, ok := AllowedExtensions[ext]; !ok {
		return "", ErrBadExtension
	}
	return ext, nil
}

// Store persists an accepted upload under a new unique name and returns that
// name. Rejected uploads never reach the store.
func (m *Manager) Store(ctx context.Context, u *Upload) (string, error) {
	ext, err := m.Check(u)
	if err != nil {
		return "", err
	}

	name, err := m.freshName(ctx, ext)
	if err != nil {
		return "", err
	}

	src, err := u.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open upload: %v", ErrBlobWriteFailed, err)
	}
	defer src.Close()

	err = m.store.Put(ctx, name, src, u.Size, AllowedExtensions[ext])
	metrics.RecordBlob("put", err)
	if err != nil {
		m.log.Error("image store failed", "blob", name, "error", err)
		return "", fmt.Errorf("%w: %v", ErrBlobWriteFailed, err)
	}

	m.log.Debug("image stored", "blob", name, "size", u.Size)
	return name, nil
}

func (m *Manager) freshName(ctx context.Context, ext string) (string, error) {
	for i := 0; i < nameTries; i++ {
		name := m.newName(ext)
		exists, err := m.store.Exists(ctx, name)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBlobWriteFailed, err)
		}
		if !exists {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no free blob name after %d attempts", ErrBlobWriteFailed, nameTries)
}

// Release deletes the named blob. Best effort: an empty name or a missing
// blob is a no-op and failures are only logged.
func (m *Manager) Release(ctx context.Context, name string) {
	if name == "" {
		return
	}
	err := m.store.Delete(ctx, name)
	metrics.RecordBlob("delete", err)
	if err != nil {
		if errors.Is(err, blobstore.ErrInvalidName) {
			m.log.Warn("refusing to release blob with invalid name", "blob", name)
			return
		}
		m.log.Warn("image release failed", "blob", name, "error", err)
		return
	}
	m.log.Debug("image released", "blob", name)
}

// URL is the public address of a stored image.
func (m *Manager) URL(name string) string {
	if name == "" {
		return ""
	}
	return m.store.URL(name)
}
