package shortlink

import "errors"

var (
	ErrInvalidCode    = errors.New("invalid short link")
	ErrRecipeNotFound = errors.New("recipe not found")
)
