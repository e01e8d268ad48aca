package entity

import (
	"time"
)

// User - справочная запись об игроке.
// Аутентификацией и регистрацией занимается внешний коллаборатор
// идентичности; ядро игры получает уже проверенный user_id из токена
// и читает профиль только для отображения в результатах.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	ProfilePicture string    `gorm:"size:255;not null;default:''" json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}
