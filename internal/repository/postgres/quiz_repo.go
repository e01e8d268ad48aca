package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// GetByID возвращает викторину по ID
func (r *QuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions возвращает викторину с вопросами в порядке position
func (r *QuizRepo) GetWithQuestions(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.position ASC")
		}).
		Preload("Questions.Question").
		First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// ListWithQuestionCount возвращает каталог викторин с количеством вопросов.
// Количество считается одним запросом через LEFT JOIN, без N+1.
func (r *QuizRepo) ListWithQuestionCount(limit, offset int) ([]repository.QuizListItem, int64, error) {
	var total int64
	if err := r.db.Model(&entity.Quiz{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []repository.QuizListItem
	err := r.db.Model(&entity.Quiz{}).
		Select("quizzes.*, COUNT(quiz_questions.id) AS question_count").
		Joins("LEFT JOIN quiz_questions ON quiz_questions.quiz_id = quizzes.id").
		Group("quizzes.id").
		Order("quizzes.id").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
