package auth

import (
	"context"

	"foodgram/internal/domain"
)

// UserRepositoryInterface holds only the methods the auth service uses.
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}
