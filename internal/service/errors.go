package service

import (
	"fmt"
	"time"

	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// Ошибки игрового ядра. Все разворачиваются (Unwrap) в общие сентинелы
// apperrors, чтобы хендлеры могли маппить их на HTTP-статусы через errors.Is.
var (
	ErrQuizNotFound       = fmt.Errorf("quiz not found: %w", apperrors.ErrNotFound)
	ErrQuizHasNoQuestions = fmt.Errorf("quiz has no questions: %w", apperrors.ErrValidation)
	ErrSessionNotFound    = fmt.Errorf("invalid or expired session: %w", apperrors.ErrNotFound)
	ErrSessionCompleted   = fmt.Errorf("session is already completed: %w", apperrors.ErrConflict)
	ErrNotSessionOwner    = fmt.Errorf("session belongs to another player: %w", apperrors.ErrForbidden)
	// ErrStaleSubmission - конкурентный или повторный сабмит проиграл гонку
	// оптимистической проверке индекса. Состояние сессии не изменено.
	ErrStaleSubmission = fmt.Errorf("duplicate or concurrent submission: %w", apperrors.ErrStaleState)
)

// NotYetStartedError - запланированная викторина еще не стартовала.
// Несет количество секунд до старта для клиента.
type NotYetStartedError struct {
	StartTime       time.Time
	StartsInSeconds int64
}

func (e *NotYetStartedError) Error() string {
	return fmt.Sprintf("quiz has not started yet (starts in %d seconds)", e.StartsInSeconds)
}

// Unwrap позволяет errors.Is(err, apperrors.ErrForbidden)
func (e *NotYetStartedError) Unwrap() error {
	return apperrors.ErrForbidden
}

// AlreadyCompletedError - игрок уже завершил эту викторину.
// Несет ранее записанный финальный счет; повторный старт запрещен.
type AlreadyCompletedError struct {
	FinalScore     int
	TotalQuestions int
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("quiz already completed with score %d/%d", e.FinalScore, e.TotalQuestions)
}

// Unwrap позволяет errors.Is(err, apperrors.ErrConflict)
func (e *AlreadyCompletedError) Unwrap() error {
	return apperrors.ErrConflict
}
