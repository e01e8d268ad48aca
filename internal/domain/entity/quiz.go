package entity

import (
	"time"
)

// DefaultQuestionTimeLimit - лимит времени на вопрос по умолчанию (секунды)
const DefaultQuestionTimeLimit = 15

// Quiz представляет викторину: именованный упорядоченный набор вопросов
// с лимитом времени на каждый вопрос.
// Создается административным коллаборатором; ядро игры только читает.
type Quiz struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description  string `gorm:"type:text;not null;default:''" json:"description"`
	TimeLimitSec int    `gorm:"not null;default:15" json:"time_limit_sec"`
	// ScheduledTime - время старта для запланированных викторин.
	// NULL означает, что викторина доступна сразу.
	ScheduledTime *time.Time     `gorm:"index" json:"scheduled_time,omitempty"`
	Questions     []QuizQuestion `gorm:"foreignKey:QuizID" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// IsScheduledAfter проверяет, запланирована ли викторина позже момента now
func (q *Quiz) IsScheduledAfter(now time.Time) bool {
	return q.ScheduledTime != nil && q.ScheduledTime.After(now)
}

// SecondsUntilStart возвращает количество секунд до старта викторины.
// Для незапланированных или уже стартовавших викторин возвращает 0.
func (q *Quiz) SecondsUntilStart(now time.Time) int64 {
	if !q.IsScheduledAfter(now) {
		return 0
	}
	return int64(q.ScheduledTime.Sub(now).Seconds())
}

// QuestionAt возвращает вопрос на заданной 0-based позиции.
// Предполагает, что Questions загружены и отсортированы по position.
func (q *Quiz) QuestionAt(index int) *Question {
	if index < 0 || index >= len(q.Questions) {
		return nil
	}
	return &q.Questions[index].Question
}

// QuizQuestion - связующая таблица между викторинами и вопросами.
// Хранит порядок вопросов внутри викторины.
type QuizQuestion struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	QuizID     uint     `gorm:"not null;index;uniqueIndex:idx_quiz_question" json:"quiz_id"`
	QuestionID uint     `gorm:"not null;uniqueIndex:idx_quiz_question" json:"question_id"`
	Position   int      `gorm:"not null" json:"position"` // 1-based порядковый номер
	Question   Question `gorm:"foreignKey:QuestionID" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
