package recipe

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

type RecipeRepository interface {
	List(ctx context.Context, f repository.RecipeFilter) ([]domain.Recipe, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, r *domain.Recipe) error
	Update(ctx context.Context, r *domain.Recipe, replaceIngredients bool) error
	Delete(ctx context.Context, id int64) error
}

type IngredientChecker interface {
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

// RelationStore is a user to recipe list: favorites or the shopping cart.
type RelationStore interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	Linked(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

type SubscriptionReader interface {
	SubscribedTo(ctx context.Context, subscriberID int64, authorIDs []int64) (map[int64]bool, error)
}
