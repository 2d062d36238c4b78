package section

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coursematerials/internal/pkg/apperr"
	"coursematerials/internal/pkg/response"
	"coursematerials/internal/pkg/validator"
)

// Handler handles section HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates section handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListSections handles GET /api/v1/sections and GET /api/v1/admin/sections
func (h *Handler) ListSections(c *gin.Context) {
	sections, err := h.service.List(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", err)
		return
	}
	if sections == nil {
		sections = []Summary{}
	}
	response.Success(c, http.StatusOK, ListResponse{Sections: sections})
}

// GetSection handles GET /api/v1/admin/sections/:id
func (h *Handler) GetSection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

// CreateSection handles POST /api/v1/admin/sections
func (h *Handler) CreateSection(c *gin.Context) {
	var req SaveSectionRequest
	if err := c.ShouldBind(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	sec, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sec)
}

// UpdateSection handles PUT /api/v1/admin/sections/:id
func (h *Handler) UpdateSection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SaveSectionRequest
	if err := c.ShouldBind(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	sec, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

// DeleteSection handles DELETE /api/v1/admin/sections/:id
func (h *Handler) DeleteSection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Section deleted"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid section ID")
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		response.CustomError(c, http.StatusBadRequest, ve.Code, ve.Message)
		return
	}
	if errors.Is(err, ErrSectionNotFound) {
		response.CustomError(c, http.StatusNotFound, "SECTION_NOT_FOUND", "Section not found")
		return
	}
	response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
