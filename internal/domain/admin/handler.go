package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursematerials/internal/pkg/response"
	"coursematerials/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type LoginRequest struct {
	Password string `json:"password" form:"password" validate:"required"`
}

// Login handles POST /api/v1/admin/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, ErrLoginDisabled) {
			response.CustomError(c, http.StatusServiceUnavailable, "LOGIN_DISABLED", "Admin login is not configured")
			return
		}
		if errors.Is(err, ErrInvalidCredentials) {
			response.CustomError(c, http.StatusUnauthorized, "AUTH_FAILED", "Invalid password")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, session)
}

// Dashboard handles GET /api/v1/admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
