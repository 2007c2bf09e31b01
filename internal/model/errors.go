package model

import "errors"

// Ошибки пересекают границу хранилища только как значения,
// паники наружу не выходят
var (
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrValidation          = errors.New("validation failed")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
