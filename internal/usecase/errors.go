package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrTermNotFound     = errors.New("term not found")
	ErrDatabaseDisabled = errors.New("database not configured")
)
