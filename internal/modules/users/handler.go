package users

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/imagestore"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts routes that allow anonymous access.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", h.Register)
		usersGroup.GET("", h.List)
		usersGroup.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	me := protected.Group("/users")
	{
		me.GET("/me", h.Me)
		me.DELETE("/me", h.DeleteMe)
		me.PUT("/me/avatar", h.SetAvatar)
		me.DELETE("/me/avatar", h.DeleteAvatar)
		me.POST("/set_password", h.SetPassword)
	}
}

// Register godoc
// @Summary Register a user
// @Tags Users
// @Param request body RegisterRequest true "email, username, names, password"
// @Success 201 {object} RegisteredUser
// @Failure 400 {object} map[string]interface{}
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", errs)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUsername):
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, err.Error(), gin.H{"username": "pattern"})
		case errors.Is(err, ErrEmailTaken):
			response.ErrorWithDetails(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error(), gin.H{"email": "unique"})
		case errors.Is(err, ErrUsernameTaken):
			response.ErrorWithDetails(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error(), gin.H{"username": "unique"})
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to register user")
		}
		return
	}

	response.JSON(c, http.StatusCreated, toRegisteredUser(user))
}

// List godoc
// @Summary List users
// @Tags Users
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	viewerID, _ := middleware.UserID(c)
	p := pagination.FromContext(c)

	list, total, err := h.service.List(c.Request.Context(), viewerID, p)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list users")
		return
	}
	response.JSON(c, http.StatusOK, pagination.NewPage(c, p, total, list))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "User not found")
		return
	}
	viewerID, _ := middleware.UserID(c)

	user, err := h.service.Get(c.Request.Context(), viewerID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

func (h *Handler) Me(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	user, err := h.service.Get(c.Request.Context(), userID, userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

func (h *Handler) DeleteMe(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetAvatar godoc
// @Summary Upload avatar
// @Tags Users
// @Security TokenAuth
// @Param request body AvatarRequest true "base64 data URI"
// @Success 200 {object} AvatarResponse
// @Failure 400,401 {object} map[string]interface{}
// @Router /users/me/avatar [put]
func (h *Handler) SetAvatar(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	url, err := h.service.SetAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, AvatarResponse{Avatar: url})
}

func (h *Handler) DeleteAvatar(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	if err := h.service.DeleteAvatar(c.Request.Context(), userID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetPassword(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", errs)
		return
	}

	if err := h.service.SetPassword(c.Request.Context(), userID, req); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "User not found")
	case errors.Is(err, ErrWrongPassword):
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, err.Error(), gin.H{"current_password": "invalid"})
	case errors.Is(err, ErrAvatarRequired):
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, err.Error(), gin.H{"avatar": "required"})
	case errors.Is(err, imagestore.ErrInvalidImage), errors.Is(err, imagestore.ErrImageTooLarge):
		response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	}
}

func mustUserID(c *gin.Context) int64 {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication credentials were not provided")
		return 0
	}
	return id
}
