package dto

import (
	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/service"
)

// AnswerOption - один вариант ответа. Клиент возвращает текст, а не индекс:
// позиций сервер не отслеживает, угадывание позиции ничего не дает.
type AnswerOption struct {
	Text string `json:"text"`
}

// QuestionResponse - вопрос в формате для ответа клиенту.
// Собирается на границе и никогда не содержит признака правильности.
type QuestionResponse struct {
	Number  int            `json:"number"` // 1-based номер вопроса
	Text    string         `json:"text"`
	Answers []AnswerOption `json:"answers"`
}

// StartGameResponse - ответ на успешный старт сессии
type StartGameResponse struct {
	SessionID      string           `json:"session_id"`
	QuizName       string           `json:"quiz_name"`
	TimeLimit      int              `json:"time_limit"`
	TotalQuestions int              `json:"total_questions"`
	Resumed        bool             `json:"resumed,omitempty"`
	Question       QuestionResponse `json:"question"`
}

// RankingSummaryResponse - сводка ранжирования при завершении
type RankingSummaryResponse struct {
	PlayersWorse  int64 `json:"players_worse"`
	PlayersSame   int64 `json:"players_same"`
	PlayersBetter int64 `json:"players_better"`
	Percentile    int   `json:"percentile"`
}

// AnswerLogEntryResponse - одна запись итоговой истории ответов
type AnswerLogEntryResponse struct {
	QuestionText  string `json:"question_text"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Feedback      string `json:"feedback"`
	SourceURL     string `json:"source_url"`
}

// AchievementResponse - достижение в формате для ответа клиенту
type AchievementResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconClass   string `json:"icon_class"`
}

// SubmitAnswerResponse - ответ на сабмит
type SubmitAnswerResponse struct {
	IsCorrect      bool   `json:"is_correct"`
	Feedback       string `json:"feedback"`
	CorrectAnswer  string `json:"correct_answer"`
	CurrentScore   int    `json:"current_score"`
	TotalQuestions int    `json:"total_questions"`
	QuizFinished   bool   `json:"quiz_finished"`

	NextQuestion *QuestionResponse `json:"next_question,omitempty"`

	FinalScore      *int                     `json:"final_score,omitempty"`
	RankingSummary  *RankingSummaryResponse  `json:"ranking_summary,omitempty"`
	ResultsSummary  []AnswerLogEntryResponse `json:"results_summary,omitempty"`
	NewAchievements []AchievementResponse    `json:"new_achievements,omitempty"`
}

func newQuestionResponse(q *service.QuestionView) QuestionResponse {
	answers := make([]AnswerOption, len(q.Answers))
	for i, text := range q.Answers {
		answers[i] = AnswerOption{Text: text}
	}
	return QuestionResponse{
		Number:  q.Number,
		Text:    q.Text,
		Answers: answers,
	}
}

// NewStartGameResponse создает DTO для стартовавшей сессии
func NewStartGameResponse(game *service.StartedGame) *StartGameResponse {
	return &StartGameResponse{
		SessionID:      game.SessionID,
		QuizName:       game.QuizName,
		TimeLimit:      game.TimeLimitSec,
		TotalQuestions: game.TotalQuestions,
		Resumed:        game.Resumed,
		Question:       newQuestionResponse(&game.Question),
	}
}

// NewSubmitAnswerResponse создает DTO для результата сабмита
func NewSubmitAnswerResponse(outcome *service.SubmitOutcome) *SubmitAnswerResponse {
	resp := &SubmitAnswerResponse{
		IsCorrect:      outcome.IsCorrect,
		Feedback:       outcome.Feedback,
		CorrectAnswer:  outcome.CorrectAnswer,
		CurrentScore:   outcome.CurrentScore,
		TotalQuestions: outcome.TotalQuestions,
		QuizFinished:   outcome.QuizFinished,
	}

	if outcome.NextQuestion != nil {
		q := newQuestionResponse(outcome.NextQuestion)
		resp.NextQuestion = &q
	}

	if outcome.QuizFinished {
		finalScore := outcome.FinalScore
		resp.FinalScore = &finalScore
		if outcome.Ranking != nil {
			resp.RankingSummary = &RankingSummaryResponse{
				PlayersWorse:  outcome.Ranking.PlayersWorse,
				PlayersSame:   outcome.Ranking.PlayersSame,
				PlayersBetter: outcome.Ranking.PlayersBetter,
				Percentile:    outcome.Ranking.Percentile,
			}
		}
		resp.ResultsSummary = NewAnswerLogResponse(outcome.ResultsSummary)
		resp.NewAchievements = NewAchievementListResponse(outcome.NewAchievements)
	}
	return resp
}

// NewAnswerLogResponse создает DTO журнала ответов
func NewAnswerLogResponse(log entity.AnswerLog) []AnswerLogEntryResponse {
	entries := make([]AnswerLogEntryResponse, len(log))
	for i, e := range log {
		entries[i] = AnswerLogEntryResponse{
			QuestionText:  e.QuestionText,
			YourAnswer:    e.YourAnswer,
			CorrectAnswer: e.CorrectAnswer,
			IsCorrect:     e.IsCorrect,
			Feedback:      e.Feedback,
			SourceURL:     e.SourceURL,
		}
	}
	return entries
}

// NewAchievementListResponse создает DTO списка достижений
func NewAchievementListResponse(achievements []entity.Achievement) []AchievementResponse {
	if len(achievements) == 0 {
		return nil
	}
	out := make([]AchievementResponse, len(achievements))
	for i, a := range achievements {
		out[i] = AchievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			IconClass:   a.IconClass,
		}
	}
	return out
}
