package section

import (
	"errors"

	"coursematerials/internal/pkg/apperr"
)

var (
	ErrSectionNotFound = errors.New("section not found")

	ErrNameRequired = apperr.New("NAME_REQUIRED", "Section name is required")
	ErrSlugRequired = apperr.New("SLUG_REQUIRED", "Could not derive a URL-safe slug from the name")
	ErrSlugConflict = apperr.New("SLUG_CONFLICT", "Slug already exists")
)
