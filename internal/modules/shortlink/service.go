package shortlink

import (
	"context"
	"fmt"
)

type RecipeChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	recipes RecipeChecker
}

func NewService(recipes RecipeChecker) *Service {
	return &Service{recipes: recipes}
}

// Code returns the short code of an existing recipe.
func (s *Service) Code(ctx context.Context, recipeID int64) (string, error) {
	if err := s.ensureExists(ctx, recipeID); err != nil {
		return "", err
	}
	return Encode(recipeID), nil
}

// Resolve maps a short code to the id of an existing recipe.
func (s *Service) Resolve(ctx context.Context, code string) (int64, error) {
	id, err := Decode(code)
	if err != nil {
		return 0, err
	}
	if err := s.ensureExists(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Service) ensureExists(ctx context.Context, id int64) error {
	ok, err := s.recipes.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check recipe: %w", err)
	}
	if !ok {
		return ErrRecipeNotFound
	}
	return nil
}
