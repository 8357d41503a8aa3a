package recipe

import (
	"context"
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

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	recipes := protected.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.PATCH("/:id", h.Update)
		recipes.DELETE("/:id", h.Delete)

		recipes.POST("/:id/favorite", h.AddFavorite)
		recipes.DELETE("/:id/favorite", h.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", h.AddToCart)
		recipes.DELETE("/:id/shopping_cart", h.RemoveFromCart)
	}
}

// List godoc
// @Summary List recipes
// @Description Newest first. Filters: author, is_favorited, is_in_shopping_cart.
// @Tags Recipes
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Param author query int false "author id"
// @Param is_favorited query int false "0 or 1"
// @Param is_in_shopping_cart query int false "0 or 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /recipes [get]
func (h *Handler) List(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, err.Error(), gin.H{"author": "invalid"})
		return
	}
	viewerID, _ := middleware.UserID(c)

	list, total, err := h.service.List(c.Request.Context(), viewerID, q)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list recipes")
		return
	}
	p := pagination.Params{Limit: q.Limit, Offset: q.Offset}
	response.JSON(c, http.StatusOK, pagination.NewPage(c, p, total, list))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	viewerID, _ := middleware.UserID(c)

	recipe, err := h.service.Get(c.Request.Context(), viewerID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, recipe)
}

// Create godoc
// @Summary Publish a recipe
// @Tags Recipes
// @Security TokenAuth
// @Param request body CreateRecipeRequest true "ingredients, image (base64), name, text, cooking_time"
// @Success 201 {object} RecipeResponse
// @Failure 400,401 {object} map[string]interface{}
// @Router /recipes [post]
func (h *Handler) Create(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", errs)
		return
	}

	recipe, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, recipe)
}

// Update godoc
// @Summary Update a recipe
// @Description Author only. Absent fields keep their value; ingredients, when sent, replace the list.
// @Tags Recipes
// @Security TokenAuth
// @Param id path int true "recipe id"
// @Param request body UpdateRecipeRequest true "fields to change"
// @Success 200 {object} RecipeResponse
// @Failure 400,401,403,404 {object} map[string]interface{}
// @Router /recipes/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", errs)
		return
	}

	recipe, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, recipe)
}

func (h *Handler) Delete(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	h.add(c, h.service.AddFavorite)
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	h.remove(c, h.service.RemoveFavorite)
}

func (h *Handler) AddToCart(c *gin.Context) {
	h.add(c, h.service.AddToCart)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	h.remove(c, h.service.RemoveFromCart)
}

func (h *Handler) add(c *gin.Context, add func(ctx context.Context, userID, recipeID int64) (ShortRecipe, error)) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	short, err := add(c.Request.Context(), userID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, short)
}

func (h *Handler) remove(c *gin.Context, remove func(ctx context.Context, userID, recipeID int64) error) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := remove(c.Request.Context(), userID, id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if field, ok := fieldOf(err); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, err.Error(), gin.H{field: err.Error()})
		return
	}

	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Recipe not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case errors.Is(err, ErrAlreadyInList):
		response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, ErrNotInList):
		response.Error(c, http.StatusBadRequest, "NOT_FOUND_IN_LIST", err.Error())
	case errors.Is(err, imagestore.ErrInvalidImage), errors.Is(err, imagestore.ErrImageTooLarge):
		response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	}
}

func parseListQuery(c *gin.Context) (ListQuery, error) {
	p := pagination.FromContext(c)
	q := ListQuery{
		IsFavorited:      isTrue(c.Query("is_favorited")),
		IsInShoppingCart: isTrue(c.Query("is_in_shopping_cart")),
		Limit:            p.Limit,
		Offset:           p.Offset,
	}
	if raw := c.Query("author"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return ListQuery{}, ErrInvalidAuthorID
		}
		q.AuthorID = id
	}
	return q, nil
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}

func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Recipe not found")
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
