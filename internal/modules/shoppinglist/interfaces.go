package shoppinglist

import (
	"context"

	"foodgram/internal/domain"
)

type CartReader interface {
	RecipeIDs(ctx context.Context, userID int64) ([]int64, error)
}

type IngredientRowReader interface {
	IngredientRows(ctx context.Context, recipeIDs []int64) ([]domain.IngredientAmount, error)
}
