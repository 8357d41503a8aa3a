package shoppinglist

import (
	"context"
	"fmt"
)

type Service struct {
	carts   CartReader
	recipes IngredientRowReader
}

func NewService(carts CartReader, recipes IngredientRowReader) *Service {
	return &Service{carts: carts, recipes: recipes}
}

// Build aggregates the ingredients of every recipe in the user's cart. An
// empty cart yields an empty list.
func (s *Service) Build(ctx context.Context, userID int64) ([]Item, error) {
	recipeIDs, err := s.carts.RecipeIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(recipeIDs) == 0 {
		return []Item{}, nil
	}

	rows, err := s.recipes.IngredientRows(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("load cart ingredients: %w", err)
	}
	return Aggregate(rows), nil
}
