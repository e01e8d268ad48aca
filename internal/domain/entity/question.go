package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math/rand"
	"time"
)

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос викторины.
// Справочные данные: создаются административным коллаборатором, ядро игры
// их только читает (правка текста после сыгранных сессий исказила бы
// исторические сравнения ответов, поэтому для ядра они append-only).
type Question struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	Text             string      `gorm:"type:text;not null;uniqueIndex" json:"text"`
	CorrectAnswer    string      `gorm:"type:text;not null" json:"-"` // Скрыто от клиента
	IncorrectAnswers StringArray `gorm:"type:jsonb;not null" json:"-"`
	Topic            string      `gorm:"size:255" json:"topic,omitempty"`
	Difficulty       int         `gorm:"not null;default:3" json:"difficulty"`
	SourceURL        string      `gorm:"type:text" json:"source_url,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет ответ строгим сравнением текста.
// Политика нормализации: точное совпадение с учётом регистра, без trim.
// Валидация всегда идет по тексту, а не по позиции в выдаче.
func (q *Question) IsCorrect(submittedText string) bool {
	return submittedText == q.CorrectAnswer
}

// AnswerSet возвращает полный набор из 4 вариантов (1 правильный + 3 неправильных)
// в каноническом порядке хранения, без перемешивания.
func (q *Question) AnswerSet() []string {
	answers := make([]string, 0, len(q.IncorrectAnswers)+1)
	answers = append(answers, q.CorrectAnswer)
	answers = append(answers, q.IncorrectAnswers...)
	return answers
}

// ShuffledAnswers возвращает варианты ответа в свежей равномерно случайной
// перестановке. Перестановка генерируется заново при каждом показе вопроса и
// никогда не выводится из идентификаторов сессии или вопроса, поэтому клиент
// не может предсказать позицию правильного ответа.
func (q *Question) ShuffledAnswers() []string {
	answers := q.AnswerSet()
	rand.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	return answers
}
