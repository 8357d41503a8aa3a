package ingredient

import (
	"context"

	"foodgram/internal/domain"
)

type Repository interface {
	Search(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
}
