package material

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursematerials/internal/domain/image"
	"coursematerials/internal/domain/section"
	"coursematerials/internal/pkg/apperr"
	"coursematerials/internal/pkg/response"
	"coursematerials/internal/pkg/validator"
)

// SectionFinder resolves the public section page slug.
type SectionFinder interface {
	GetBySlug(ctx context.Context, slug string) (*section.Section, error)
}

// Handler handles material HTTP requests
type Handler struct {
	service  *Service
	sections SectionFinder
}

// NewHandler creates material handler
func NewHandler(service *Service, sections SectionFinder) *Handler {
	return &Handler{service: service, sections: sections}
}

// SectionPage handles GET /api/v1/sections/:slug
func (h *Handler) SectionPage(c *gin.Context) {
	sec, err := h.sections.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	materials, err := h.service.ListBySection(c.Request.Context(), sec.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, SectionPage{Section: sec, Materials: materials})
}

// GetMaterial handles GET /api/v1/materials/:id and GET /api/v1/admin/materials/:id
func (h *Handler) GetMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// ListMaterials handles GET /api/v1/admin/materials
func (h *Handler) ListMaterials(c *gin.Context) {
	materials, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Materials: materials})
}

// CreateMaterial handles POST /api/v1/admin/materials
func (h *Handler) CreateMaterial(c *gin.Context) {
	p, ok := bindPayload(c)
	if !ok {
		return
	}

	m, err := h.service.Create(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// UpdateMaterial handles PUT /api/v1/admin/materials/:id
func (h *Handler) UpdateMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, p)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// DeleteMaterial handles DELETE /api/v1/admin/materials/:id
func (h *Handler) DeleteMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Material deleted"})
}

func bindPayload(c *gin.Context) (Payload, bool) {
	var req SaveMaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid form data")
		return Payload{}, false
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return Payload{}, false
	}

	p := req.payload()
	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		p.Image = image.FromMultipart(fh)
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		response.CustomError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid image upload")
		return Payload{}, false
	}
	return p, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid material ID")
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		response.CustomError(c, http.StatusBadRequest, ve.Code, ve.Message)
		return
	}
	switch {
	case errors.Is(err, ErrMaterialNotFound):
		response.CustomError(c, http.StatusNotFound, "MATERIAL_NOT_FOUND", "Material not found")
	case errors.Is(err, section.ErrSectionNotFound):
		response.CustomError(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
	case errors.Is(err, image.ErrBlobWriteFailed):
		response.CustomError(c, http.StatusInternalServerError, ErrImageUploadFailed.Code, "Failed to store image")
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
