package service

import (
	"time"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
)

// Тексты обратной связи, отдаваемые клиенту вместе с вердиктом
const (
	FeedbackCorrect   = "Correct!"
	FeedbackIncorrect = "Incorrect"
	FeedbackTimeUp    = "Time's up!"
)

// AnswerVerdict - решение валидатора по одному сабмиту
type AnswerVerdict struct {
	IsCorrect bool
	TimedOut  bool
	Feedback  string
}

// CheckAnswer решает, засчитывается ли ответ. Чистая функция без побочных
// эффектов: всё состояние приходит аргументами.
//
// Просроченный сабмит (elapsed > limit) принудительно считается неверным,
// даже если текст совпадает с правильным ответом. Пустая строка - валидный
// сабмит "без ответа", всегда неверный. Сравнение текста строгое,
// с учётом регистра (см. entity.Question.IsCorrect).
func CheckAnswer(question *entity.Question, submittedText string, elapsed, limit time.Duration) AnswerVerdict {
	if elapsed > limit {
		return AnswerVerdict{
			IsCorrect: false,
			TimedOut:  true,
			Feedback:  FeedbackTimeUp,
		}
	}
	if question.IsCorrect(submittedText) {
		return AnswerVerdict{
			IsCorrect: true,
			Feedback:  FeedbackCorrect,
		}
	}
	return AnswerVerdict{
		IsCorrect: false,
		Feedback:  FeedbackIncorrect,
	}
}
