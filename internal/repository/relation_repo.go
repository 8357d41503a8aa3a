package repository

import (
	"context"
	"time"

	"foodgram/internal/database"
	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// RecipeRelation is a (user, recipe) pair table.
type RecipeRelation interface {
	domain.Favorite | domain.ShoppingCart
}

// RecipeRelationRepository stores favorites and shopping cart entries.
type RecipeRelationRepository[T RecipeRelation] struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *RecipeRelationRepository[domain.Favorite] {
	return &RecipeRelationRepository[domain.Favorite]{db: db}
}

func NewShoppingCartRepository(db *gorm.DB) *RecipeRelationRepository[domain.ShoppingCart] {
	return &RecipeRelationRepository[domain.ShoppingCart]{db: db}
}

// Add links the recipe to the user. The unique index decides races; a second
// add of the same pair returns ErrDuplicate.
func (r *RecipeRelationRepository[T]) Add(ctx context.Context, userID, recipeID int64) error {
	err := r.db.WithContext(ctx).Model(new(T)).Create(map[string]any{
		"user_id":    userID,
		"recipe_id":  recipeID,
		"created_at": time.Now(),
	}).Error
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Remove unlinks the pair or returns ErrNotLinked when it was never added.
func (r *RecipeRelationRepository[T]) Remove(ctx context.Context, userID, recipeID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotLinked
	}
	return nil
}

func (r *RecipeRelationRepository[T]) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// RecipeIDs returns the recipe ids the user has linked, in insertion order.
func (r *RecipeRelationRepository[T]) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("recipe_id", &ids).Error
	return ids, err
}

// Linked reports which of recipeIDs the user has linked.
func (r *RecipeRelationRepository[T]) Linked(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	linked := make(map[int64]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return linked, nil
	}

	var ids []int64
	if err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		linked[id] = true
	}
	return linked, nil
}
