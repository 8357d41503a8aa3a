package recipe

import (
	"foodgram/internal/domain"
	"foodgram/internal/modules/users"
)

type IngredientInput struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

type CreateRecipeRequest struct {
	Ingredients []IngredientInput `json:"ingredients"`
	Image       string            `json:"image"`
	Name        string            `json:"name" validate:"max=256"`
	Text        string            `json:"text"`
	CookingTime int               `json:"cooking_time"`
}

// UpdateRecipeRequest carries only the fields being changed. A present
// ingredients list replaces the whole list.
type UpdateRecipeRequest struct {
	Ingredients *[]IngredientInput `json:"ingredients"`
	Image       *string            `json:"image"`
	Name        *string            `json:"name" validate:"omitempty,max=256"`
	Text        *string            `json:"text"`
	CookingTime *int               `json:"cooking_time"`
}

// ListQuery holds the recipe list filters.
type ListQuery struct {
	AuthorID         int64
	IsFavorited      bool
	IsInShoppingCart bool
	Limit            int
	Offset           int
}

type RecipeIngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse is the full recipe shape.
type RecipeResponse struct {
	ID               int64                      `json:"id"`
	Author           users.UserResponse         `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// ShortRecipe is returned by favorite and cart toggles and in subscriptions.
type ShortRecipe struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func NewShortRecipe(r *domain.Recipe) ShortRecipe {
	return ShortRecipe{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

func toIngredientResponses(items []domain.RecipeIngredient) []RecipeIngredientResponse {
	out := make([]RecipeIngredientResponse, 0, len(items))
	for _, it := range items {
		row := RecipeIngredientResponse{ID: it.IngredientID, Amount: it.Amount}
		if it.Ingredient != nil {
			row.Name = it.Ingredient.Name
			row.MeasurementUnit = it.Ingredient.MeasurementUnit
		}
		out = append(out, row)
	}
	return out
}
