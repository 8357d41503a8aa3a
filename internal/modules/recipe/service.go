package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/modules/users"
	"foodgram/internal/pkg/imagestore"
	"foodgram/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const imagePrefix = "recipes"

type Service struct {
	recipes     RecipeRepository
	ingredients IngredientChecker
	favorites   RelationStore
	carts       RelationStore
	subs        SubscriptionReader
	images      imagestore.Storage
}

func NewService(
	recipes RecipeRepository,
	ingredients IngredientChecker,
	favorites RelationStore,
	carts RelationStore,
	subs SubscriptionReader,
	images imagestore.Storage,
) *Service {
	return &Service{
		recipes:     recipes,
		ingredients: ingredients,
		favorites:   favorites,
		carts:       carts,
		subs:        subs,
		images:      images,
	}
}

// List returns one page of recipes as seen by viewerID (0 for anonymous).
// The favorited and cart filters select nothing for anonymous viewers.
func (s *Service) List(ctx context.Context, viewerID int64, q ListQuery) ([]RecipeResponse, int64, error) {
	f := repository.RecipeFilter{AuthorID: q.AuthorID, Limit: q.Limit, Offset: q.Offset}
	if q.IsFavorited || q.IsInShoppingCart {
		if viewerID == 0 {
			return []RecipeResponse{}, 0, nil
		}
		if q.IsFavorited {
			f.FavoritedBy = viewerID
		}
		if q.IsInShoppingCart {
			f.InCartOf = viewerID
		}
	}

	list, total, err := s.recipes.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.present(ctx, viewerID, list)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *Service) Get(ctx context.Context, viewerID, id int64) (RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return RecipeResponse{}, err
	}
	out, err := s.present(ctx, viewerID, []domain.Recipe{*recipe})
	if err != nil {
		return RecipeResponse{}, err
	}
	return out[0], nil
}

// Create validates the whole payload before storing the image and writing
// the recipe.
func (s *Service) Create(ctx context.Context, authorID int64, req CreateRecipeRequest) (RecipeResponse, error) {
	name, text, err := validateText(req.Name, req.Text)
	if err != nil {
		return RecipeResponse{}, err
	}
	if req.CookingTime < 1 {
		return RecipeResponse{}, ErrInvalidCookingTime
	}
	if strings.TrimSpace(req.Image) == "" {
		return RecipeResponse{}, ErrImageRequired
	}
	img, err := imagestore.DecodeDataURI(req.Image)
	if err != nil {
		return RecipeResponse{}, err
	}
	if err := s.validateIngredients(ctx, req.Ingredients); err != nil {
		return RecipeResponse{}, err
	}

	url, err := s.images.Save(ctx, imagestore.NewKey(imagePrefix, img.Ext), img.Data, img.ContentType)
	if err != nil {
		return RecipeResponse{}, fmt.Errorf("store recipe image: %w", err)
	}

	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       url,
		Text:        text,
		CookingTime: req.CookingTime,
		Ingredients: toRows(req.Ingredients),
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		s.removeImage(ctx, url)
		return RecipeResponse{}, fmt.Errorf("create recipe: %w", err)
	}
	return s.Get(ctx, authorID, recipe.ID)
}

// Update applies the present fields. Only the author may update.
func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateRecipeRequest) (RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return RecipeResponse{}, err
	}
	if recipe.AuthorID != userID {
		return RecipeResponse{}, ErrForbidden
	}

	name, text := recipe.Name, recipe.Text
	if req.Name != nil {
		name = *req.Name
	}
	if req.Text != nil {
		text = *req.Text
	}
	if name, text, err = validateText(name, text); err != nil {
		return RecipeResponse{}, err
	}
	if req.CookingTime != nil {
		if *req.CookingTime < 1 {
			return RecipeResponse{}, ErrInvalidCookingTime
		}
		recipe.CookingTime = *req.CookingTime
	}

	var img *imagestore.Image
	if req.Image != nil {
		if strings.TrimSpace(*req.Image) == "" {
			return RecipeResponse{}, ErrImageRequired
		}
		if img, err = imagestore.DecodeDataURI(*req.Image); err != nil {
			return RecipeResponse{}, err
		}
	}

	replace := req.Ingredients != nil
	if replace {
		if err := s.validateIngredients(ctx, *req.Ingredients); err != nil {
			return RecipeResponse{}, err
		}
		recipe.Ingredients = toRows(*req.Ingredients)
	}

	oldImage := recipe.Image
	recipe.Name, recipe.Text = name, text
	if img != nil {
		url, err := s.images.Save(ctx, imagestore.NewKey(imagePrefix, img.Ext), img.Data, img.ContentType)
		if err != nil {
			return RecipeResponse{}, fmt.Errorf("store recipe image: %w", err)
		}
		recipe.Image = url
	}

	if err := s.recipes.Update(ctx, recipe, replace); err != nil {
		if img != nil {
			s.removeImage(ctx, recipe.Image)
		}
		return RecipeResponse{}, fmt.Errorf("update recipe: %w", err)
	}
	if img != nil {
		s.removeImage(ctx, oldImage)
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the recipe. Only the author may delete.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return ErrForbidden
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	s.removeImage(ctx, recipe.Image)
	return nil
}

func (s *Service) AddFavorite(ctx context.Context, userID, recipeID int64) (ShortRecipe, error) {
	return s.addTo(ctx, s.favorites, userID, recipeID)
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	return s.removeFrom(ctx, s.favorites, userID, recipeID)
}

func (s *Service) AddToCart(ctx context.Context, userID, recipeID int64) (ShortRecipe, error) {
	return s.addTo(ctx, s.carts, userID, recipeID)
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, recipeID int64) error {
	return s.removeFrom(ctx, s.carts, userID, recipeID)
}

func (s *Service) addTo(ctx context.Context, store RelationStore, userID, recipeID int64) (ShortRecipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return ShortRecipe{}, err
	}
	if err := store.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ShortRecipe{}, ErrAlreadyInList
		}
		return ShortRecipe{}, err
	}
	return NewShortRecipe(recipe), nil
}

func (s *Service) removeFrom(ctx context.Context, store RelationStore, userID, recipeID int64) error {
	exists, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}
	if err := store.Remove(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotLinked) {
			return ErrNotInList
		}
		return err
	}
	return nil
}

// validateIngredients rejects empty lists, repeated ids, amounts below one
// and ids that do not exist.
func (s *Service) validateIngredients(ctx context.Context, items []IngredientInput) error {
	if len(items) == 0 {
		return ErrEmptyIngredients
	}
	ids := make([]int64, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		if it.Amount < 1 {
			return ErrInvalidAmount
		}
		if seen[it.ID] {
			return ErrDuplicateIngredient
		}
		seen[it.ID] = true
		ids = append(ids, it.ID)
	}

	found, err := s.ingredients.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if !found[id] {
			return fmt.Errorf("%w: %d", ErrUnknownIngredient, id)
		}
	}
	return nil
}

func (s *Service) present(ctx context.Context, viewerID int64, list []domain.Recipe) ([]RecipeResponse, error) {
	recipeIDs := make([]int64, len(list))
	authorIDs := make([]int64, 0, len(list))
	for i := range list {
		recipeIDs[i] = list[i].ID
		authorIDs = append(authorIDs, list[i].AuthorID)
	}

	favorited, err := s.favorites.Linked(ctx, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := s.carts.Linked(ctx, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.subs.SubscribedTo(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]RecipeResponse, len(list))
	for i := range list {
		r := &list[i]
		var author users.UserResponse
		if r.Author != nil {
			author = users.NewUserResponse(r.Author, subscribed[r.AuthorID])
		}
		out[i] = RecipeResponse{
			ID:               r.ID,
			Author:           author,
			Ingredients:      toIngredientResponses(r.Ingredients),
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		}
	}
	return out, nil
}

func (s *Service) getRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *Service) removeImage(ctx context.Context, url string) {
	if err := s.images.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to remove recipe image")
	}
}

func validateText(name, text string) (string, string, error) {
	name, text = strings.TrimSpace(name), strings.TrimSpace(text)
	if name == "" {
		return "", "", ErrNameRequired
	}
	if text == "" {
		return "", "", ErrTextRequired
	}
	return name, text, nil
}

func toRows(items []IngredientInput) []domain.RecipeIngredient {
	rows := make([]domain.RecipeIngredient, 0, len(items))
	for _, it := range items {
		rows = append(rows, domain.RecipeIngredient{IngredientID: it.ID, Amount: it.Amount})
	}
	return rows
}
