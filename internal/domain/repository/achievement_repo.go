package repository

import (
	"time"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
)

// AchievementRepository определяет методы для работы с достижениями
type AchievementRepository interface {
	// EnsureCatalog заполняет справочник достижений, если он пуст.
	// Вызывается при старте приложения.
	EnsureCatalog(achievements []entity.Achievement) error
	// GetUserAchievementIDs возвращает множество уже выданных игроку достижений
	GetUserAchievementIDs(userID uint) (map[string]bool, error)
	// Award выдает достижение игроку; повторная выдача - apperrors.ErrConflict
	Award(userID uint, achievementID string, awardedAt time.Time) error
	ListByUser(userID uint) ([]entity.Achievement, error)
}
