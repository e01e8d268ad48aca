package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/kvizarena-api/internal/handler/dto"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
	"github.com/yourusername/kvizarena-api/internal/service"
)

// GameHandler обрабатывает игровые запросы: старт сессии и сабмит ответа
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler создает новый игровой обработчик
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// StartGame обрабатывает POST /api/game/start/:quiz_id
func (h *GameHandler) StartGame(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста
	userID := c.MustGet("userID").(uint)

	game, err := h.gameService.StartGame(quizID, userID)
	if err != nil {
		h.handleGameError(c, err)
		return
	}

	status := http.StatusCreated
	if game.Resumed {
		status = http.StatusOK
	}
	c.JSON(status, dto.NewStartGameResponse(game))
}

// SubmitAnswerRequest представляет запрос на сабмит ответа.
// AnswerText - указатель: пустая строка - валидный сабмит "без ответа",
// отсутствие поля - ошибка валидации.
type SubmitAnswerRequest struct {
	SessionID  string  `json:"session_id" binding:"required,uuid4"`
	AnswerText *string `json:"answer_text" binding:"required"`
}

// SubmitAnswer обрабатывает POST /api/game/answer
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session_id or answer_text"})
		return
	}

	outcome, err := h.gameService.SubmitAnswer(req.SessionID, userID, *req.AnswerText)
	if err != nil {
		h.handleGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmitAnswerResponse(outcome))
}

// handleGameError маппит ошибки игрового ядра на HTTP-статусы.
// Все ошибки ядра восстановимы на границе клиента; фатальных нет.
func (h *GameHandler) handleGameError(c *gin.Context, err error) {
	var notStarted *service.NotYetStartedError
	if errors.As(err, &notStarted) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":             "Quiz has not started yet.",
			"status":            "scheduled",
			"starts_in_seconds": notStarted.StartsInSeconds,
			"start_time_utc":    notStarted.StartTime.UTC(),
		})
		return
	}

	var completed *service.AlreadyCompletedError
	if errors.As(err, &completed) {
		c.JSON(http.StatusConflict, gin.H{
			"error":           "Quiz already completed.",
			"final_score":     completed.FinalScore,
			"total_questions": completed.TotalQuestions,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrStaleState):
		c.JSON(http.StatusConflict, gin.H{"error": "Submission lost the race, session state has already advanced"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("ERROR: Internal server error in GameHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
