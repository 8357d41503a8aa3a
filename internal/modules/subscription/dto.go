package subscription

import (
	"foodgram/internal/domain"
	"foodgram/internal/modules/recipe"
	"foodgram/internal/modules/users"
)

// AuthorResponse is a followed author with a preview of their recipes.
type AuthorResponse struct {
	users.UserResponse
	Recipes      []recipe.ShortRecipe `json:"recipes"`
	RecipesCount int64                `json:"recipes_count"`
}

func newAuthorResponse(u *domain.User, recipes []domain.Recipe, count int64) AuthorResponse {
	short := make([]recipe.ShortRecipe, 0, len(recipes))
	for i := range recipes {
		short = append(short, recipe.NewShortRecipe(&recipes[i]))
	}
	return AuthorResponse{
		UserResponse: users.NewUserResponse(u, true),
		Recipes:      short,
		RecipesCount: count,
	}
}
