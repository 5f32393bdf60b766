package models

import "errors"

// Sentinel errors shared by the stores and the HTTP layer.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("preference with this name already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrStorage       = errors.New("storage failure")
	ErrCorrupt       = errors.New("collection file is corrupt")
	ErrUnauthorized  = errors.New("unauthorized")
)
