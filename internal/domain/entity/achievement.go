package entity

import (
	"time"
)

// Идентификаторы достижений
const (
	AchievementProfessor = "professor" // 100% счет в любой викторине
	AchievementWarrior   = "warrior"   // 3 завершенные запланированные викторины
	AchievementVeteran   = "veteran"   // 10 завершенных викторин
)

// Achievement - справочник достижений
type Achievement struct {
	ID          string    `gorm:"primaryKey;size:50" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:255;not null" json:"description"`
	IconClass   string    `gorm:"size:50;not null;default:''" json:"icon_class"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement - факт выдачи достижения игроку
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID string    `gorm:"size:50;not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	AwardedAt     time.Time `gorm:"not null" json:"awarded_at"`
}

// TableName определяет имя таблицы для GORM
func (UserAchievement) TableName() string {
	return "user_achievements"
}
