package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// AchievementRepo реализует repository.AchievementRepository
type AchievementRepo struct {
	db *gorm.DB
}

// NewAchievementRepo создает новый репозиторий достижений
func NewAchievementRepo(db *gorm.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// EnsureCatalog заполняет справочник достижений, если он пуст
func (r *AchievementRepo) EnsureCatalog(achievements []entity.Achievement) error {
	var count int64
	if err := r.db.Model(&entity.Achievement{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&achievements).Error
}

// GetUserAchievementIDs возвращает множество выданных игроку достижений
func (r *AchievementRepo) GetUserAchievementIDs(userID uint) (map[string]bool, error) {
	var ids []string
	err := r.db.Model(&entity.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(ids))
	for _, id := range ids {
		existing[id] = true
	}
	return existing, nil
}

// Award выдает достижение игроку
func (r *AchievementRepo) Award(userID uint, achievementID string, awardedAt time.Time) error {
	ua := entity.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		AwardedAt:     awardedAt,
	}
	if err := r.db.Create(&ua).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// ListByUser возвращает достижения игрока
func (r *AchievementRepo) ListByUser(userID uint) ([]entity.Achievement, error) {
	var achievements []entity.Achievement
	err := r.db.Model(&entity.Achievement{}).
		Joins("JOIN user_achievements ON user_achievements.achievement_id = achievements.id").
		Where("user_achievements.user_id = ?", userID).
		Order("user_achievements.awarded_at").
		Find(&achievements).Error
	return achievements, err
}
