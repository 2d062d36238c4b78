package section

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles section data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates section repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every section, newest first, with its material count.
func (r *Repository) List(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := r.db.WithContext(ctx).
		Table("sections").
		Select("sections.*, (SELECT COUNT(*) FROM materials WHERE materials.section_id = sections.id) AS material_count").
		Order("sections.created_at DESC, sections.id DESC").
		Scan(&out).Error
	return out, err
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Section, error) {
	var s Section
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Section, error) {
	var s Section
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *Section) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Update writes name and slug of an existing section.
func (r *Repository) Update(ctx context.Context, s *Section) error {
	res := r.db.WithContext(ctx).
		Model(&Section{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{"name": s.Name, "slug": s.Slug})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Section{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// Exists reports whether a section with id is stored.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Section{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// SlugTaken reports whether slug belongs to a section other than excludeID.
// Pass 0 to check against every section.
func (r *Repository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Section{}).Where("slug = ?", slug)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Section{}).Count(&n).Error
	return n, err
}
