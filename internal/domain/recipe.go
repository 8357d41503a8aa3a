package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:128;not null;uniqueIndex:idx_ingredient_name_unit;index"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:64;not null;uniqueIndex:idx_ingredient_name_unit"`
	// NameLower is the Unicode-folded name used by prefix search.
	NameLower       string `json:"-" gorm:"size:128;not null;default:'';index"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func (i *Ingredient) BeforeSave(tx *gorm.DB) error {
	i.NameLower = strings.ToLower(i.Name)
	return nil
}

// Recipe is owned by its author; its ingredient rows, favorites and cart
// entries are removed together with it.
type Recipe struct {
	ID          int64              `json:"id" gorm:"primaryKey"`
	AuthorID    int64              `json:"author_id" gorm:"not null;index"`
	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string             `json:"name" gorm:"size:256;not null"`
	Image       string             `json:"image" gorm:"size:512;not null"`
	Text        string             `json:"text" gorm:"type:text;not null"`
	CookingTime int                `json:"cooking_time" gorm:"not null;check:chk_recipes_cooking_time,cooking_time >= 1"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

type RecipeIngredient struct {
	ID           int64       `json:"id" gorm:"primaryKey"`
	RecipeID     int64       `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64       `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient;index"`
	Ingredient   *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Amount       int         `json:"amount" gorm:"not null;check:chk_recipe_ingredients_amount,amount >= 1"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// IngredientAmount is a recipe ingredient line flattened to name, unit and
// amount.
type IngredientAmount struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}
