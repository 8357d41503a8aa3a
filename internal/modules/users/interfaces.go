package users

import (
	"context"

	"foodgram/internal/domain"
)

// UserRepository is the storage the users service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateAvatar(ctx context.Context, id int64, avatar string) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) error
}

// SubscriptionReader answers is_subscribed for a viewer.
type SubscriptionReader interface {
	SubscribedTo(ctx context.Context, subscriberID int64, authorIDs []int64) (map[int64]bool, error)
}
