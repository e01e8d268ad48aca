package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_IsCorrect_ExactMatch(t *testing.T) {
	// Arrange
	question := &Question{
		ID:               1,
		Text:             "Столица Франции?",
		CorrectAnswer:    "Париж",
		IncorrectAnswers: StringArray{"Лион", "Марсель", "Ницца"},
	}

	// Act & Assert
	assert.True(t, question.IsCorrect("Париж"), "IsCorrect должен вернуть true для точного совпадения")
	assert.False(t, question.IsCorrect("париж"), "Сравнение строгое, с учётом регистра")
	assert.False(t, question.IsCorrect(" Париж"), "Пробелы не обрезаются")
	assert.False(t, question.IsCorrect(""), "Пустой ответ всегда неверный")
	assert.False(t, question.IsCorrect("Лион"), "Неправильный вариант не засчитывается")
}

func TestQuestion_AnswerSet(t *testing.T) {
	// Arrange
	question := &Question{
		CorrectAnswer:    "A",
		IncorrectAnswers: StringArray{"B", "C", "D"},
	}

	// Act
	answers := question.AnswerSet()

	// Assert
	require.Len(t, answers, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, answers)
}

func TestQuestion_ShuffledAnswers_SameTexts(t *testing.T) {
	// Arrange
	question := &Question{
		CorrectAnswer:    "Дунай",
		IncorrectAnswers: StringArray{"Волга", "Рейн", "Эльба"},
	}

	// Act & Assert: каждая выдача содержит те же 4 текста,
	// порядок не обязан совпадать между выдачами
	for i := 0; i < 20; i++ {
		answers := question.ShuffledAnswers()
		require.Len(t, answers, 4)
		assert.ElementsMatch(t, []string{"Дунай", "Волга", "Рейн", "Эльба"}, answers)
	}
}

func TestQuestion_ShuffledAnswers_DoesNotMutateQuestion(t *testing.T) {
	// Arrange
	question := &Question{
		CorrectAnswer:    "A",
		IncorrectAnswers: StringArray{"B", "C", "D"},
	}

	// Act
	for i := 0; i < 10; i++ {
		question.ShuffledAnswers()
	}

	// Assert: исходные данные вопроса не тронуты
	assert.Equal(t, "A", question.CorrectAnswer)
	assert.Equal(t, StringArray{"B", "C", "D"}, question.IncorrectAnswers)
}
