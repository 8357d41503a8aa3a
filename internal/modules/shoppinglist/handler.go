package shoppinglist

import (
	"bytes"
	"fmt"
	"net/http"

	"foodgram/internal/middleware"
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
	protected.GET("/recipes/download_shopping_cart", h.Download)
}

// Download godoc
// @Summary Download the shopping list
// @Description Ingredients of every recipe in the cart, summed per name and unit.
// @Tags Recipes
// @Security TokenAuth
// @Param format query string false "txt (default), csv or xlsx"
// @Produce plain
// @Success 200 {file} file
// @Failure 400,401 {object} map[string]interface{}
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) Download(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication credentials were not provided")
		return
	}

	format, err := ParseFormat(c.Query("format"))
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, err.Error(), gin.H{"format": "invalid"})
		return
	}

	items, err := h.service.Build(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to build shopping list")
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, items, format); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to render shopping list")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.Filename()))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
