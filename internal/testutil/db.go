// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"foodgram/internal/database"
	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// PixelPNG is a valid 1x1 PNG data URI.
const PixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user whose email and names derive from username.
func CreateUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()

	u := &domain.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    strings.ToUpper(username[:1]) + username[1:],
		LastName:     "Tester",
		PasswordHash: "x",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

// CreateIngredient inserts an ingredient.
func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *domain.Ingredient {
	t.Helper()

	item := &domain.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create ingredient: %v", err)
	}
	return item
}

// CreateRecipe inserts a recipe by author with the given ingredient amounts.
func CreateRecipe(t *testing.T, db *gorm.DB, authorID int64, name string, amounts map[int64]int) *domain.Recipe {
	t.Helper()

	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "/media/recipes/test.png",
		Text:        "Mix and serve.",
		CookingTime: 10,
	}
	err := db.WithContext(context.Background()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		for id, amount := range amounts {
			row := &domain.RecipeIngredient{RecipeID: recipe.ID, IngredientID: id, Amount: amount}
			if err := tx.Omit("Ingredient").Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}
	return recipe
}
