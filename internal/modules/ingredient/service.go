package ingredient

import (
	"context"
	"errors"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search matches the start of the ingredient name, ignoring case.
func (s *Service) Search(ctx context.Context, name string) ([]domain.Ingredient, error) {
	items, err := s.repo.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Ingredient{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return item, nil
}
