package auth

import (
	"errors"
	"net/http"

	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages token issuance
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/auth/token/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/token/logout", h.Logout)
}

// Login godoc
// @Summary Obtain an auth token
// @Description Exchanges email and password for a token sent as "Authorization: Token <token>".
// @Tags Auth
// @Param request body LoginRequest true "email, password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Router /auth/token/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", errs)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "INVALID_CREDENTIALS", err.Error())
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to log in")
		return
	}

	response.JSON(c, http.StatusOK, TokenResponse{AuthToken: token})
}

// Logout always succeeds for an authenticated caller; tokens are stateless
// and expire on their own.
func (h *Handler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
