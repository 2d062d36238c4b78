package material

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

const listingColumns = "materials.*, sections.name AS section_name, sections.slug AS section_slug"

// Repository handles material data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates material repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) listings(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("materials").
		Select(listingColumns).
		Joins("JOIN sections ON sections.id = materials.section_id")
}

// ListAll returns every material with its section, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]Listing, error) {
	var out []Listing
	err := r.listings(ctx).
		Order("materials.created_at DESC, materials.id DESC").
		Scan(&out).Error
	return out, err
}

func (r *Repository) ListBySection(ctx context.Context, sectionID int64) ([]Listing, error) {
	var out []Listing
	err := r.listings(ctx).
		Where("materials.section_id = ?", sectionID).
		Order("materials.created_at DESC, materials.id DESC").
		Scan(&out).Error
	return out, err
}

// GetListing returns one material joined with its section.
func (r *Repository) GetListing(ctx context.Context, id int64) (*Listing, error) {
	var out []Listing
	if err := r.listings(ctx).Where("materials.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrMaterialNotFound
	}
	return &out[0], nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Material, error) {
	var m Material
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, m *Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update writes every editable column, NULLs included.
func (r *Repository) Update(ctx context.Context, m *Material) error {
	res := r.db.WithContext(ctx).
		Model(&Material{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"section_id":  m.SectionID,
			"title":       m.Title,
			"description": m.Description,
			"file_type":   m.FileType,
			"file_url":    m.FileURL,
			"image_path":  m.ImagePath,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Material{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

// DeleteBySection removes every material of a section and returns the image
// blobs they owned.
func (r *Repository) DeleteBySection(ctx context.Context, sectionID int64) (int64, []string, error) {
	var paths []string
	var deleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Material{}).
			Where("section_id = ? AND image_path IS NOT NULL AND image_path <> ''", sectionID).
			Pluck("image_path", &paths).Error; err != nil {
			return err
		}
		res := tx.Where("section_id = ?", sectionID).Delete(&Material{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return deleted, paths, nil
}

// ImagePaths lists every blob name referenced by a material.
func (r *Repository) ImagePaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).
		Model(&Material{}).
		Where("image_path IS NOT NULL AND image_path <> ''").
		Pluck("image_path", &paths).Error
	return paths, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Material{}).Count(&n).Error
	return n, err
}
