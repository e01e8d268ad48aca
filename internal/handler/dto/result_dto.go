package dto

import (
	"time"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
)

// ResultResponse - итоговый результат в формате для ответа клиенту
type ResultResponse struct {
	ID             uint                     `json:"id"`
	UserID         uint                     `json:"user_id"`
	QuizID         uint                     `json:"quiz_id"`
	Username       string                   `json:"username"`
	ProfilePicture string                   `json:"profile_picture,omitempty"`
	Score          int                      `json:"score"`
	TotalQuestions int                      `json:"total_questions"`
	CompletedAt    time.Time                `json:"completed_at"`
	ResultsSummary []AnswerLogEntryResponse `json:"results_summary,omitempty"`
}

// PaginatedResultResponse - пагинированный список результатов
type PaginatedResultResponse struct {
	Results []ResultResponse `json:"results"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// QuizListItemResponse - элемент каталога викторин
type QuizListItemResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	TimeLimitSec  int        `json:"time_limit_sec"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	QuestionCount int        `json:"question_count"`
}

// NewResultResponse создает DTO для результата.
// Журнал ответов включается только по запросу (includeLog): в лидерборде
// он не нужен и заметно раздувает ответ.
func NewResultResponse(result *entity.Result, includeLog bool) ResultResponse {
	resp := ResultResponse{
		ID:             result.ID,
		UserID:         result.UserID,
		QuizID:         result.QuizID,
		Username:       result.Username,
		ProfilePicture: result.ProfilePicture,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CompletedAt:    result.CompletedAt,
	}
	if includeLog {
		resp.ResultsSummary = NewAnswerLogResponse(result.AnswerLog)
	}
	return resp
}

// NewPaginatedResultResponse создает DTO для страницы результатов
func NewPaginatedResultResponse(results []entity.Result, total int64, page, perPage int) *PaginatedResultResponse {
	out := make([]ResultResponse, len(results))
	for i := range results {
		out[i] = NewResultResponse(&results[i], false)
	}
	return &PaginatedResultResponse{
		Results: out,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
}

// NewQuizListResponse создает DTO каталога викторин
func NewQuizListResponse(items []repository.QuizListItem) []QuizListItemResponse {
	out := make([]QuizListItemResponse, len(items))
	for i, item := range items {
		out[i] = QuizListItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			Description:   item.Description,
			TimeLimitSec:  item.TimeLimitSec,
			ScheduledTime: item.ScheduledTime,
			QuestionCount: item.QuestionCount,
		}
	}
	return out
}
