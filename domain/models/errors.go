package models

import "errors"

// Not-found sentinels, surfaced as 404 by the handlers.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrUserNotFound     = errors.New("user not found")
)

// Referential validation failures. The messages are part of the API contract
// and end up verbatim in the field-error map.
var (
	ErrCategoryDoesNotExist = errors.New("Category does not exist")
	ErrTagsDoNotExist       = errors.New("Tags does not exist")
	ErrUserAlreadyExists    = errors.New("User already exists!")
	ErrSelfParent           = errors.New("category cannot be its own parent")
	ErrInvalidCredentials   = errors.New("invalid username or password")
)
