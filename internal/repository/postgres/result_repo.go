package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// isUniqueViolation проверяет ошибку нарушения уникального индекса.
// Поддерживаем оба драйвера: pgx (основной) и lib/pq (cmd/fix-db).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// Save сохраняет итоговый результат.
// Гонка двух завершений одной пары (user, quiz) разрешается уникальным
// индексом: проигравший получает ErrConflict.
func (r *ResultRepo) Save(result *entity.Result) error {
	if err := r.db.Create(result).Error; err != nil {
		if isUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByUserAndQuiz возвращает результат игрока для конкретной викторины
func (r *ResultRepo) GetByUserAndQuiz(userID, quizID uint) (*entity.Result, error) {
	var result entity.Result
	err := r.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// ListByQuiz возвращает результаты викторины по убыванию счета, с пагинацией
func (r *ResultRepo) ListByQuiz(quizID uint, limit, offset int) ([]entity.Result, int64, error) {
	var results []entity.Result
	var total int64

	err := r.db.Model(&entity.Result{}).Where("quiz_id = ?", quizID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = r.db.Where("quiz_id = ?", quizID).
		Order("score DESC, completed_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListByUser возвращает результаты игрока, новые первыми
func (r *ResultRepo) ListByUser(userID uint, limit, offset int) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	return results, err
}

// CountByUser возвращает количество завершенных игроком викторин
func (r *ResultRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Result{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountScheduledByUser возвращает количество завершенных игроком
// запланированных викторин
func (r *ResultRepo) CountScheduledByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Result{}).
		Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("results.user_id = ? AND quizzes.scheduled_time IS NOT NULL", userID).
		Count(&count).Error
	return count, err
}

// ScoreDistribution возвращает распределение финальных счетов по викторине.
// Один агрегатный запрос GROUP BY: движок ранжирования никогда не тянет
// строки результатов в память, историческая популяция может быть большой.
func (r *ResultRepo) ScoreDistribution(quizID uint) ([]repository.ScoreBucket, error) {
	var buckets []repository.ScoreBucket
	err := r.db.Raw(`
		SELECT score, COUNT(*) AS players
		FROM results
		WHERE quiz_id = ?
		GROUP BY score
		ORDER BY score`, quizID).
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}
