package material

import (
	"context"
	"errors"
	"strings"

	"coursematerials/internal/domain/image"
	"coursematerials/internal/pkg/embedurl"
)

// SectionChecker answers whether a section id refers to a stored section.
type SectionChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ImageStorer puts an accepted upload into the blob store and returns its name.
type ImageStorer interface {
	Store(ctx context.Context, u *image.Upload) (string, error)
}

// Payload is a submitted material form.
type Payload struct {
	SectionID   int64
	Title       string
	Description string
	FileType    string
	FileURL     string
	// Image is nil when no file was uploaded.
	Image *image.Upload
}

// Prepared is a validated material ready to be written.
type Prepared struct {
	Material *Material
	// StoredImage is the blob written while preparing; release it if the
	// write fails.
	StoredImage string
	// ReleaseAfterSave is the blob the previous version owned and no longer
	// does; release it once the write succeeded.
	ReleaseAfterSave string
}

// Validator decides whether a payload is acceptable and computes the values
// to persist.
type Validator struct {
	sections SectionChecker
	images   ImageStorer
}

func NewValidator(sections SectionChecker, images ImageStorer) *Validator {
	return &Validator{sections: sections, images: images}
}

// ValidateAndPrepare checks p, first failure wins, and resolves the reference.
// existing is the stored record when updating and nil when creating. Every
// check that does not touch the blob store runs before the upload is stored.
func (v *Validator) ValidateAndPrepare(ctx context.Context, p Payload, existing *Material) (*Prepared, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if p.SectionID <= 0 {
		return nil, ErrSectionRequired
	}
	ok, err := v.sections.Exists(ctx, p.SectionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSectionRequired
	}

	fileType := FileType(strings.TrimSpace(p.FileType))
	if !fileType.Valid() {
		return nil, ErrInvalidFileType
	}

	prior := existing.StoredImage()
	out := &Prepared{
		Material: &Material{
			SectionID:   p.SectionID,
			Title:       title,
			Description: nullable(strings.TrimSpace(p.Description)),
		},
	}
	if existing != nil {
		out.Material.ID = existing.ID
		out.Material.CreatedAt = existing.CreatedAt
	}

	fileURL := strings.TrimSpace(p.FileURL)

	switch fileType {
	case FileTypeImage:
		if p.Image == nil && prior == "" {
			return nil, ErrImageRequired
		}
		if p.Image == nil {
			out.Material.SetReference(ImageRef{Path: prior})
			return out, nil
		}

		path, err := v.images.Store(ctx, p.Image)
		if err != nil {
			if errors.Is(err, image.ErrUploadRejected) {
				return nil, ErrImageUploadFailed.Wrap(err)
			}
			return nil, err
		}
		out.StoredImage = path
		out.ReleaseAfterSave = prior
		out.Material.SetReference(ImageRef{Path: path})
		return out, nil

	case FileTypeYouTube:
		if fileURL == "" {
			return nil, ErrYouTubeURLRequired
		}
		if _, ok := embedurl.YouTubeID(fileURL); !ok {
			return nil, ErrInvalidYouTubeURL
		}
		out.Material.SetReference(YouTubeRef{URL: fileURL})

	default:
		out.Material.SetReference(DriveRef{Kind: fileType, URL: fileURL})
	}

	out.ReleaseAfterSave = prior
	return out, nil
}
