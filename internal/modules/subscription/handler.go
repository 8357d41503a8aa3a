package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	usersGroup := protected.Group("/users")
	{
		usersGroup.GET("/subscriptions", h.List)
		usersGroup.POST("/:id/subscribe", h.Subscribe)
		usersGroup.DELETE("/:id/subscribe", h.Unsubscribe)
	}
}

// List godoc
// @Summary Authors the current user follows
// @Tags Users
// @Security TokenAuth
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Param recipes_limit query int false "recipes per author"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /users/subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	p := pagination.FromContext(c)

	list, total, err := h.service.List(c.Request.Context(), userID, p, recipesLimit(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pagination.NewPage(c, p, total, list))
}

// Subscribe godoc
// @Summary Follow an author
// @Tags Users
// @Security TokenAuth
// @Param id path int true "author id"
// @Param recipes_limit query int false "recipes in the response"
// @Success 201 {object} AuthorResponse
// @Failure 400,401,404 {object} map[string]interface{}
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	authorID, ok := parseAuthorID(c)
	if !ok {
		return
	}

	author, err := h.service.Subscribe(c.Request.Context(), userID, authorID, recipesLimit(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, author)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	authorID, ok := parseAuthorID(c)
	if !ok {
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), userID, authorID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSelfSubscription):
		response.Error(c, http.StatusBadRequest, "SELF_SUBSCRIPTION", err.Error())
	case errors.Is(err, ErrAuthorNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, ErrAlreadySubscribed):
		response.Error(c, http.StatusBadRequest, "ALREADY_SUBSCRIBED", err.Error())
	case errors.Is(err, ErrNotSubscribed):
		response.Error(c, http.StatusBadRequest, "NOT_SUBSCRIBED", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	}
}

// recipesLimit reads recipes_limit; absent or invalid means no cap.
func recipesLimit(c *gin.Context) int {
	v, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseAuthorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Author not found")
		return 0, false
	}
	return id, true
}

func mustUserID(c *gin.Context) int64 {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication credentials were not provided")
		return 0
	}
	return id
}
