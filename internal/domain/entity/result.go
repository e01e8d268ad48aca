package entity

import (
	"time"
)

// Result представляет итоговый результат завершенной попытки.
// Создается ровно один раз при завершении сессии; уникальный индекс
// (user_id, quiz_id) гарантирует не более одного результата на пару
// игрок-викторина. Используется движком ранжирования как историческая
// популяция и профилем/лидербордом как история игрока.
type Result struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index;uniqueIndex:idx_user_quiz" json:"user_id"`
	QuizID         uint      `gorm:"not null;index;uniqueIndex:idx_user_quiz" json:"quiz_id"`
	SessionID      string    `gorm:"size:36;not null" json:"session_id"`
	Username       string    `gorm:"size:50;not null" json:"username"`
	ProfilePicture string    `gorm:"size:255;not null;default:''" json:"profile_picture"`
	Score          int       `gorm:"not null;default:0" json:"score"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	AnswerLog      AnswerLog `gorm:"type:jsonb;not null;default:'[]'" json:"-"`
	CompletedAt    time.Time `gorm:"not null" json:"completed_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}

// IsPerfect проверяет, набран ли максимальный счет
func (r *Result) IsPerfect() bool {
	return r.TotalQuestions > 0 && r.Score == r.TotalQuestions
}
