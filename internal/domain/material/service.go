package material

import (
	"context"

	"coursematerials/internal/metrics"
	"coursematerials/internal/pkg/apperr"
	"coursematerials/internal/pkg/logger"
)

// ImageLifecycle is the part of the image manager the service needs after
// validation: releasing blobs and building their public URLs.
type ImageLifecycle interface {
	ImageStorer
	Release(ctx context.Context, name string)
	URL(name string) string
}

// Service handles material business logic
type Service struct {
	repo      *Repository
	validator *Validator
	images    ImageLifecycle
	log       *logger.Logger
}

// NewService creates material service
func NewService(repo *Repository, sections SectionChecker, images ImageLifecycle, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: NewValidator(sections, images),
		images:    images,
		log:       log.With("service", "MaterialService"),
	}
}

// Create validates p and stores a new material.
func (s *Service) Create(ctx context.Context, p Payload) (*Material, error) {
	prep, err := s.prepare(ctx, p, nil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, prep.Material); err != nil {
		s.images.Release(ctx, prep.StoredImage)
		return nil, err
	}

	s.log.Info("material created", "material_id", prep.Material.ID, "file_type", prep.Material.FileType)
	return prep.Material, nil
}

// Update validates p against the stored record and writes it. A replaced or
// dropped image is released only after the write succeeded.
func (s *Service) Update(ctx context.Context, id int64, p Payload) (*Material, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prep, err := s.prepare(ctx, p, existing)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, prep.Material); err != nil {
		s.images.Release(ctx, prep.StoredImage)
		return nil, err
	}
	s.images.Release(ctx, prep.ReleaseAfterSave)

	s.log.Info("material updated", "material_id", id, "file_type", prep.Material.FileType)
	return prep.Material, nil
}

// Delete removes a material and releases its image.
func (s *Service) Delete(ctx context.Context, id int64) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.images.Release(ctx, m.StoredImage())

	s.log.Info("material deleted", "material_id", id)
	return nil
}

// DeleteBySection removes every material of a section and releases their
// images. It returns how many materials were removed.
func (s *Service) DeleteBySection(ctx context.Context, sectionID int64) (int, error) {
	n, paths, err := s.repo.DeleteBySection(ctx, sectionID)
	if err != nil {
		return 0, err
	}
	for _, p := range paths {
		s.images.Release(ctx, p)
	}
	return int(n), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*View, error) {
	l, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(*l)
	return &v, nil
}

func (s *Service) ListAll(ctx context.Context) ([]View, error) {
	ls, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ls), nil
}

func (s *Service) ListBySection(ctx context.Context, sectionID int64) ([]View, error) {
	ls, err := s.repo.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return s.views(ls), nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// ReferencedImages lists the blob names currently owned by materials.
func (s *Service) ReferencedImages(ctx context.Context) ([]string, error) {
	return s.repo.ImagePaths(ctx)
}

func (s *Service) prepare(ctx context.Context, p Payload, existing *Material) (*Prepared, error) {
	prep, err := s.validator.ValidateAndPrepare(ctx, p, existing)
	if err != nil {
		if ve, ok := apperr.AsValidation(err); ok {
			metrics.RecordRejected("material", ve.Code)
			s.log.Debug("material rejected", "code", ve.Code, "error", err)
		}
		return nil, err
	}
	return prep, nil
}

func (s *Service) view(l Listing) View {
	return View{Listing: l, Preview: BuildPreview(&l.Material, s.images.URL)}
}

func (s *Service) views(ls []Listing) []View {
	out := make([]View, 0, len(ls))
	for _, l := range ls {
		out = append(out, s.view(l))
	}
	return out
}
