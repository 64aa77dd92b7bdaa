package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidSeason    = errors.New("season year is out of range")

	// Ошибки конфликтов
	ErrBracketConflict = errors.New("a bracket for this season already exists for this user")

	// Ошибки аутентификации и авторизации
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	ErrBracketNotFound = errors.New("bracket not found")

	// Сбой хранилища; частичное состояние не сохраняется.
	ErrStorage = errors.New("storage operation failed")
)
