package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, нет прав).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия
	// (чужая сессия, викторина еще не стартовала).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния
	// (повторное прохождение викторины, дубликат результата).
	ErrConflict = errors.New("resource state conflict")

	// ErrStaleState используется, когда конкурентное обновление проиграло гонку:
	// наблюдаемое состояние записи уже не соответствует ожидаемому.
	ErrStaleState = errors.New("stale state")
)
