package repository

import (
	"github.com/yourusername/kvizarena-api/internal/domain/entity"
)

// ScoreBucket - количество игроков с данным финальным счетом.
// Результат агрегатного запроса GROUP BY score.
type ScoreBucket struct {
	Score   int
	Players int64
}

// ResultRepository определяет методы для работы с итоговыми результатами
type ResultRepository interface {
	// Save сохраняет итоговый результат. Повторное сохранение для той же
	// пары (user, quiz) нарушает уникальный индекс и возвращает
	// apperrors.ErrConflict.
	Save(result *entity.Result) error
	GetByUserAndQuiz(userID, quizID uint) (*entity.Result, error)
	// ListByQuiz возвращает результаты викторины по убыванию счета
	// с пагинацией; вторым значением - общее количество
	ListByQuiz(quizID uint, limit, offset int) ([]entity.Result, int64, error)
	ListByUser(userID uint, limit, offset int) ([]entity.Result, error)
	CountByUser(userID uint) (int64, error)
	// CountScheduledByUser возвращает количество завершенных игроком
	// запланированных викторин (для достижения "warrior")
	CountScheduledByUser(userID uint) (int64, error)
	// ScoreDistribution возвращает распределение финальных счетов по
	// викторине одним агрегатным запросом. Движок ранжирования считает
	// перцентиль по этим корзинам, а не по строкам.
	ScoreDistribution(quizID uint) ([]ScoreBucket, error)
}
