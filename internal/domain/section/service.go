package section

import (
	"context"
	"errors"
	"strings"

	"coursematerials/internal/database"
	"coursematerials/internal/metrics"
	"coursematerials/internal/pkg/apperr"
	"coursematerials/internal/pkg/logger"
	"coursematerials/internal/pkg/slug"
)

// MaterialRemover deletes every material filed under a section and releases
// their images.
type MaterialRemover interface {
	DeleteBySection(ctx context.Context, sectionID int64) (int, error)
}

// Service handles section business logic
type Service struct {
	repo      *Repository
	materials MaterialRemover
	log       *logger.Logger
}

// NewService creates section service
func NewService(repo *Repository, materials MaterialRemover, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		materials: materials,
		log:       log.With("service", "SectionService"),
	}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Section, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Section, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Exists is the section check used by the material validator.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	return s.repo.Exists(ctx, id)
}

// Create validates the form, resolves the slug and stores a new section.
func (s *Service) Create(ctx context.Context, req SaveSectionRequest) (*Section, error) {
	name, sl, err := s.resolve(ctx, req, 0)
	if err != nil {
		return nil, err
	}

	sec := &Section{Name: name, Slug: sl}
	if err := s.repo.Create(ctx, sec); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, s.rejected(ErrSlugConflict)
		}
		return nil, err
	}

	s.log.Info("section created", "section_id", sec.ID, "slug", sec.Slug)
	return sec, nil
}

// Update renames a section. The slug is re-resolved, excluding the section
// itself from the uniqueness check.
func (s *Service) Update(ctx context.Context, id int64, req SaveSectionRequest) (*Section, error) {
	sec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, sl, err := s.resolve(ctx, req, id)
	if err != nil {
		return nil, err
	}

	sec.Name = name
	sec.Slug = sl
	if err := s.repo.Update(ctx, sec); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, s.rejected(ErrSlugConflict)
		}
		return nil, err
	}

	s.log.Info("section updated", "section_id", sec.ID, "slug", sec.Slug)
	return sec, nil
}

// Delete removes the section's materials (releasing their images) and then
// the section itself.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.materials.DeleteBySection(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("section deleted", "section_id", id, "materials_removed", removed)
	return nil
}

func (s *Service) resolve(ctx context.Context, req SaveSectionRequest, excludeID int64) (string, string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", s.rejected(ErrNameRequired)
	}

	sl, err := slug.Resolve(name, req.Slug, func(candidate string) (bool, error) {
		return s.repo.SlugTaken(ctx, candidate, excludeID)
	})
	switch {
	case errors.Is(err, slug.ErrEmpty):
		return "", "", s.rejected(ErrSlugRequired)
	case errors.Is(err, slug.ErrTaken):
		return "", "", s.rejected(ErrSlugConflict)
	case err != nil:
		return "", "", err
	}
	return name, sl, nil
}

func (s *Service) rejected(err *apperr.ValidationError) error {
	metrics.RecordRejected("section", err.Code)
	return err
}
