package subscription

import (
	"context"

	"foodgram/internal/domain"
)

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type SubscriptionStore interface {
	Add(ctx context.Context, subscriberID, authorID int64) error
	Remove(ctx context.Context, subscriberID, authorID int64) error
	ListAuthors(ctx context.Context, subscriberID int64, limit, offset int) ([]domain.User, int64, error)
}

// RecipeReader supplies the recipe preview attached to each author.
type RecipeReader interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}
