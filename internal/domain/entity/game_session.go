package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AnswerLogEntry - запись журнала об одном ответе в рамках сессии.
// Хранит и текст правильного ответа: исторические записи должны оставаться
// читаемыми, даже если справочные данные когда-нибудь изменятся.
type AnswerLogEntry struct {
	QuestionText  string `json:"question_text"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Feedback      string `json:"feedback"`
	SourceURL     string `json:"source_url"`
}

// AnswerLog - журнал ответов сессии, хранится в JSONB
type AnswerLog []AnswerLogEntry

// Scan реализует интерфейс sql.Scanner для AnswerLog
func (l *AnswerLog) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerLog{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	if len(bytes) == 0 {
		*l = AnswerLog{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Value реализует интерфейс driver.Valuer для AnswerLog
func (l AnswerLog) Value() (driver.Value, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// GameSession представляет одну попытку прохождения викторины.
// Всё состояние попытки живет в этой записи между запросами, никаких
// процессных кешей сессий в памяти. Запись создается оркестратором при старте,
// изменяется только им при сабмитах и никогда не удаляется
// (история нужна движку ранжирования и профилю).
type GameSession struct {
	// ID - непредсказуемый глобально уникальный идентификатор (uuid v4)
	ID     string `gorm:"primaryKey;size:36" json:"session_id"`
	UserID uint   `gorm:"not null;index:idx_sessions_user_quiz" json:"user_id"`
	QuizID uint   `gorm:"not null;index:idx_sessions_user_quiz" json:"quiz_id"`
	// CurrentQuestionIndex - 0-based позиция текущего вопроса.
	// Строго монотонно растет и не превышает количество вопросов.
	CurrentQuestionIndex int `gorm:"not null;default:0" json:"current_question_index"`
	Score                int `gorm:"not null;default:0" json:"score"`
	// QuestionStartedAt - момент показа текущего вопроса.
	// Таймаут оценивается сравнением с wall-clock при сабмите,
	// фоновых таймеров на сервере нет.
	QuestionStartedAt time.Time `gorm:"not null" json:"question_started_at"`
	Completed         bool      `gorm:"not null;default:false" json:"completed"`
	AnswerLog         AnswerLog `gorm:"type:jsonb;not null;default:'[]'" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (GameSession) TableName() string {
	return "game_sessions"
}

// NewGameSession создает новую сессию на первом вопросе викторины
func NewGameSession(userID, quizID uint, now time.Time) *GameSession {
	return &GameSession{
		ID:                   uuid.NewString(),
		UserID:               userID,
		QuizID:               quizID,
		CurrentQuestionIndex: 0,
		Score:                0,
		QuestionStartedAt:    now,
		AnswerLog:            AnswerLog{},
	}
}

// Elapsed возвращает время, прошедшее с показа текущего вопроса
func (s *GameSession) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.QuestionStartedAt)
}

// IsOwnedBy проверяет принадлежность сессии игроку
func (s *GameSession) IsOwnedBy(userID uint) bool {
	return s.UserID == userID
}
