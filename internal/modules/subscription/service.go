package subscription

import (
	"context"
	"errors"
	"fmt"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	users   UserReader
	subs    SubscriptionStore
	recipes RecipeReader
}

func NewService(users UserReader, subs SubscriptionStore, recipes RecipeReader) *Service {
	return &Service{users: users, subs: subs, recipes: recipes}
}

// Subscribe makes subscriberID follow authorID. recipesLimit caps the recipe
// preview in the response; 0 means no cap.
func (s *Service) Subscribe(ctx context.Context, subscriberID, authorID int64, recipesLimit int) (AuthorResponse, error) {
	if subscriberID == authorID {
		return AuthorResponse{}, ErrSelfSubscription
	}
	author, err := s.getAuthor(ctx, authorID)
	if err != nil {
		return AuthorResponse{}, err
	}

	if err := s.subs.Add(ctx, subscriberID, authorID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return AuthorResponse{}, ErrAlreadySubscribed
		}
		return AuthorResponse{}, fmt.Errorf("add subscription: %w", err)
	}
	return s.present(ctx, author, recipesLimit)
}

func (s *Service) Unsubscribe(ctx context.Context, subscriberID, authorID int64) error {
	if subscriberID == authorID {
		return ErrSelfSubscription
	}
	if _, err := s.getAuthor(ctx, authorID); err != nil {
		return err
	}

	if err := s.subs.Remove(ctx, subscriberID, authorID); err != nil {
		if errors.Is(err, repository.ErrNotLinked) {
			return ErrNotSubscribed
		}
		return fmt.Errorf("remove subscription: %w", err)
	}
	return nil
}

// List returns one page of followed authors ordered by username.
func (s *Service) List(ctx context.Context, subscriberID int64, p pagination.Params, recipesLimit int) ([]AuthorResponse, int64, error) {
	authors, total, err := s.subs.ListAuthors(ctx, subscriberID, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}

	out := make([]AuthorResponse, 0, len(authors))
	for i := range authors {
		item, err := s.present(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	return out, total, nil
}

func (s *Service) present(ctx context.Context, author *domain.User, recipesLimit int) (AuthorResponse, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return AuthorResponse{}, fmt.Errorf("author recipes: %w", err)
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return AuthorResponse{}, fmt.Errorf("count author recipes: %w", err)
	}
	if recipesLimit > 0 && count > int64(recipesLimit) {
		count = int64(recipesLimit)
	}
	return newAuthorResponse(author, recipes, count), nil
}

func (s *Service) getAuthor(ctx context.Context, id int64) (*domain.User, error) {
	author, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return author, nil
}
