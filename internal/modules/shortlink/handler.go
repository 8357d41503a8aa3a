package shortlink

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	baseURL string
}

// NewHandler builds short links on baseURL; when empty the request's own
// scheme and host are used.
func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: baseURL}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/recipes/:id/get-link", h.GetLink)
}

// RegisterRedirectRoutes mounts the /s/:code redirect outside /api.
func (h *Handler) RegisterRedirectRoutes(r gin.IRoutes) {
	r.GET("/s/:code", h.Redirect)
}

// GetLink godoc
// @Summary Short link of a recipe
// @Tags Recipes
// @Param id path int true "recipe id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/get-link [get]
func (h *Handler) GetLink(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Recipe not found")
		return
	}

	code, err := h.service.Code(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"short-link": h.base(c) + "/s/" + code})
}

func (h *Handler) Redirect(c *gin.Context) {
	id, err := h.service.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/recipes/%d", id))
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCode):
		response.Error(c, http.StatusBadRequest, "INVALID_SHORT_LINK", err.Error())
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Recipe not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	}
}

func (h *Handler) base(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
