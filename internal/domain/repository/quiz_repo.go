package repository

import (
	"github.com/yourusername/kvizarena-api/internal/domain/entity"
)

// QuizListItem - викторина вместе с количеством вопросов (для каталога)
type QuizListItem struct {
	entity.Quiz
	QuestionCount int `json:"question_count"`
}

// QuizRepository определяет доступ к справочным данным викторин.
// Ядро игры только читает: создание и редактирование викторин -
// зона ответственности административного коллаборатора.
type QuizRepository interface {
	GetByID(id uint) (*entity.Quiz, error)
	// GetWithQuestions возвращает викторину с вопросами,
	// отсортированными по позиции в викторине
	GetWithQuestions(id uint) (*entity.Quiz, error)
	// ListWithQuestionCount возвращает каталог викторин с количеством
	// вопросов, посчитанным одним запросом
	ListWithQuestionCount(limit, offset int) ([]QuizListItem, int64, error)
}
