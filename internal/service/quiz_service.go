package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// DefaultQuizCacheTTL - время жизни кеша справочных данных викторины.
// Викторины неизменяемы с точки зрения ядра, TTL страхует только от
// редких административных правок между раундами.
const DefaultQuizCacheTTL = 5 * time.Minute

// QuizService предоставляет доступ к справочным данным викторин.
// Полная викторина с вопросами кешируется в Redis: оркестратор читает её
// на каждый сабмит, ходить за ней в PostgreSQL каждый раз незачем.
type QuizService struct {
	quizRepo  repository.QuizRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
}

// NewQuizService создает новый сервис викторин
func NewQuizService(quizRepo repository.QuizRepository, cacheRepo repository.CacheRepository) *QuizService {
	return &QuizService{
		quizRepo:  quizRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  DefaultQuizCacheTTL,
	}
}

func quizCacheKey(quizID uint) string {
	return fmt.Sprintf("quiz:%d:full", quizID)
}

// cachedQuestion - внутреннее кеш-представление вопроса.
// Сущности прячут правильный ответ и варианты от клиентского JSON
// (`json:"-"`), поэтому кешировать их напрямую нельзя: сериализация
// молча потеряла бы все вопросы. Эти типы живут только между сервисом
// и Redis и никогда не отдаются наружу.
type cachedQuestion struct {
	ID               uint     `json:"id"`
	Text             string   `json:"text"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
	Topic            string   `json:"topic"`
	Difficulty       int      `json:"difficulty"`
	SourceURL        string   `json:"source_url"`
}

// cachedQuiz - внутреннее кеш-представление викторины с вопросами
// в порядке их позиций
type cachedQuiz struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	TimeLimitSec  int              `json:"time_limit_sec"`
	ScheduledTime *time.Time       `json:"scheduled_time"`
	Questions     []cachedQuestion `json:"questions"`
}

func newCachedQuiz(quiz *entity.Quiz) *cachedQuiz {
	c := &cachedQuiz{
		ID:            quiz.ID,
		Name:          quiz.Name,
		Description:   quiz.Description,
		TimeLimitSec:  quiz.TimeLimitSec,
		ScheduledTime: quiz.ScheduledTime,
		Questions:     make([]cachedQuestion, len(quiz.Questions)),
	}
	for i := range quiz.Questions {
		q := &quiz.Questions[i].Question
		c.Questions[i] = cachedQuestion{
			ID:               q.ID,
			Text:             q.Text,
			CorrectAnswer:    q.CorrectAnswer,
			IncorrectAnswers: q.IncorrectAnswers,
			Topic:            q.Topic,
			Difficulty:       q.Difficulty,
			SourceURL:        q.SourceURL,
		}
	}
	return c
}

func (c *cachedQuiz) toEntity() *entity.Quiz {
	quiz := &entity.Quiz{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		TimeLimitSec:  c.TimeLimitSec,
		ScheduledTime: c.ScheduledTime,
		Questions:     make([]entity.QuizQuestion, len(c.Questions)),
	}
	for i, q := range c.Questions {
		quiz.Questions[i] = entity.QuizQuestion{
			QuizID:     c.ID,
			QuestionID: q.ID,
			Position:   i + 1,
			Question: entity.Question{
				ID:               q.ID,
				Text:             q.Text,
				CorrectAnswer:    q.CorrectAnswer,
				IncorrectAnswers: q.IncorrectAnswers,
				Topic:            q.Topic,
				Difficulty:       q.Difficulty,
				SourceURL:        q.SourceURL,
			},
		}
	}
	return quiz
}

// GetQuizWithQuestions возвращает викторину с упорядоченными вопросами,
// сквозь кеш. Ошибки кеша не фатальны: при любой проблеме идем в базу.
func (s *QuizService) GetQuizWithQuestions(quizID uint) (*entity.Quiz, error) {
	key := quizCacheKey(quizID)

	if s.cacheRepo != nil {
		var cached cachedQuiz
		err := s.cacheRepo.GetJSON(key, &cached)
		if err == nil {
			return cached.toEntity(), nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[QuizService] Ошибка чтения кеша для викторины %d: %v", quizID, err)
		}
	}

	quiz, err := s.quizRepo.GetWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(key, newCachedQuiz(quiz), s.cacheTTL); err != nil {
			log.Printf("[QuizService] Ошибка записи кеша для викторины %d: %v", quizID, err)
		}
	}
	return quiz, nil
}

// ListQuizzes возвращает каталог викторин с количеством вопросов
func (s *QuizService) ListQuizzes(limit, offset int) ([]repository.QuizListItem, int64, error) {
	return s.quizRepo.ListWithQuestionCount(limit, offset)
}
