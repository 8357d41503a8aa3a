package recipe

import "errors"

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrForbidden       = errors.New("only the author can change this recipe")
	ErrAlreadyInList   = errors.New("recipe is already in the list")
	ErrNotInList       = errors.New("recipe is not in the list")
	ErrInvalidAuthorID = errors.New("author must be a user id")
)

// Validation errors are reported as 400 VALIDATION_ERROR.
var (
	ErrEmptyIngredients    = errors.New("at least one ingredient is required")
	ErrDuplicateIngredient = errors.New("ingredients must not repeat")
	ErrUnknownIngredient   = errors.New("unknown ingredient id")
	ErrInvalidAmount       = errors.New("ingredient amount must be at least 1")
	ErrInvalidCookingTime  = errors.New("cooking time must be at least 1")
	ErrImageRequired       = errors.New("image is required")
	ErrNameRequired        = errors.New("name is required")
	ErrTextRequired        = errors.New("text is required")
)

// fieldOf names the request field a validation error belongs to.
func fieldOf(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrEmptyIngredients),
		errors.Is(err, ErrDuplicateIngredient),
		errors.Is(err, ErrUnknownIngredient),
		errors.Is(err, ErrInvalidAmount):
		return "ingredients", true
	case errors.Is(err, ErrInvalidCookingTime):
		return "cooking_time", true
	case errors.Is(err, ErrImageRequired):
		return "image", true
	case errors.Is(err, ErrNameRequired):
		return "name", true
	case errors.Is(err, ErrTextRequired):
		return "text", true
	}
	return "", false
}
