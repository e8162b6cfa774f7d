package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrNameRequired = errors.New("recipe name is required")
	ErrNameTooLong  = errors.New("recipe name must not exceed 200 characters")
)
