package postgres

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// GameSessionRepo реализует repository.GameSessionRepository
type GameSessionRepo struct {
	db *gorm.DB
}

// NewGameSessionRepo создает новый репозиторий игровых сессий
func NewGameSessionRepo(db *gorm.DB) *GameSessionRepo {
	return &GameSessionRepo{db: db}
}

// Create создает новую сессию.
// Частичный уникальный индекс uq_sessions_active допускает не более одной
// незавершенной сессии на пару (игрок, викторина): конкурентный старт,
// проигравший гонку, получает ErrConflict.
func (r *GameSessionRepo) Create(session *entity.GameSession) error {
	if err := r.db.Create(session).Error; err != nil {
		if isUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID возвращает сессию по идентификатору
func (r *GameSessionRepo) GetByID(id string) (*entity.GameSession, error) {
	var session entity.GameSession
	err := r.db.Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetActiveByUserAndQuiz возвращает незавершенную сессию игрока для викторины
func (r *GameSessionRepo) GetActiveByUserAndQuiz(userID, quizID uint) (*entity.GameSession, error) {
	var session entity.GameSession
	err := r.db.Where("user_id = ? AND quiz_id = ? AND completed = false", userID, quizID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// AdvanceState атомарно применяет новое состояние сессии.
// Оптимистическая проверка по current_question_index входит в сам UPDATE:
// конкурентный или повторный сабмит, который прочитал то же состояние,
// обновит 0 строк и получит ErrStaleState вместо двойного начисления.
func (r *GameSessionRepo) AdvanceState(sessionID string, expectedIndex int, upd repository.SessionStateUpdate) error {
	res := r.db.Model(&entity.GameSession{}).
		Where("id = ? AND current_question_index = ? AND completed = false", sessionID, expectedIndex).
		Updates(map[string]interface{}{
			"current_question_index": upd.NewIndex,
			"score":                  upd.NewScore,
			"question_started_at":    upd.QuestionStartedAt,
			"completed":              upd.Completed,
			"answer_log":             upd.AnswerLog,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Либо сессии нет, либо её состояние уже ушло вперед.
		// Различаем для корректной ошибки на границе.
		var count int64
		if err := r.db.Model(&entity.GameSession{}).Where("id = ?", sessionID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		log.Printf("[GameSessionRepo] Stale submission for session %s (expected index %d)", sessionID, expectedIndex)
		return apperrors.ErrStaleState
	}
	return nil
}
