package repository

import (
	"time"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
)

// SessionStateUpdate описывает новое состояние сессии после сабмита ответа.
// Применяется одним атомарным UPDATE.
type SessionStateUpdate struct {
	NewIndex          int
	NewScore          int
	QuestionStartedAt time.Time
	Completed         bool
	AnswerLog         entity.AnswerLog
}

// GameSessionRepository определяет доступ к хранилищу игровых сессий.
// Все записи создает и изменяет только оркестратор; удаления нет -
// история сессий сохраняется навсегда.
type GameSessionRepository interface {
	Create(session *entity.GameSession) error
	GetByID(id string) (*entity.GameSession, error)
	// GetActiveByUserAndQuiz возвращает незавершенную сессию игрока
	// для викторины, либо apperrors.ErrNotFound
	GetActiveByUserAndQuiz(userID, quizID uint) (*entity.GameSession, error)
	// AdvanceState атомарно применяет upd к сессии при условии, что
	// наблюдаемый current_question_index все еще равен expectedIndex и
	// сессия не завершена. Если условие не выполнено (дубликат или
	// конкурентный сабмит проиграл гонку) - возвращает apperrors.ErrStaleState,
	// не меняя запись.
	AdvanceState(sessionID string, expectedIndex int, upd SessionStateUpdate) error
}
