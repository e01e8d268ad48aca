package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/kvizarena-api/internal/handler/dto"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
	"github.com/yourusername/kvizarena-api/internal/service"
)

// ResultHandler обрабатывает запросы истории результатов и достижений.
// Read-only поверхность для профиля и лидерборда.
type ResultHandler struct {
	resultService      *service.ResultService
	achievementService *service.AchievementService
}

// NewResultHandler создает новый обработчик результатов
func NewResultHandler(
	resultService *service.ResultService,
	achievementService *service.AchievementService,
) *ResultHandler {
	return &ResultHandler{
		resultService:      resultService,
		achievementService: achievementService,
	}
}

// GetQuizResults обрабатывает GET /api/quizzes/:quiz_id/results - лидерборд
func (h *ResultHandler) GetQuizResults(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)
	page, perPage := paginationParams(c, 20)

	results, total, err := h.resultService.GetQuizResults(quizID, page, perPage)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResultResponse(results, total, page, perPage))
}

// GetMyResults обрабатывает GET /api/users/me/results - история игрока
func (h *ResultHandler) GetMyResults(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	page, perPage := paginationParams(c, 20)

	results, err := h.resultService.GetUserResults(userID, page, perPage)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	out := make([]dto.ResultResponse, len(results))
	for i := range results {
		out[i] = dto.NewResultResponse(&results[i], false)
	}
	c.JSON(http.StatusOK, gin.H{"results": out, "page": page, "per_page": perPage})
}

// GetMyQuizResult обрабатывает GET /api/users/me/results/:quiz_id -
// результат игрока для конкретной викторины, с полным журналом ответов
func (h *ResultHandler) GetMyQuizResult(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	quizID := c.MustGet("quizID").(uint)

	result, err := h.resultService.GetUserResult(userID, quizID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResultResponse(result, true))
}

// GetMyAchievements обрабатывает GET /api/users/me/achievements
func (h *ResultHandler) GetMyAchievements(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	achievements, err := h.achievementService.ListUserAchievements(userID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": dto.NewAchievementListResponse(achievements)})
}

// ExportQuizResults обрабатывает GET /api/quizzes/:quiz_id/results/export -
// выгрузка лидерборда в xlsx
func (h *ResultHandler) ExportQuizResults(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint)

	f, err := h.resultService.ExportQuizResultsXLSX(quizID)
	if err != nil {
		h.handleResultError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_%d_results.xlsx", quizID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ResultHandler] Ошибка записи xlsx для викторины %d: %v", quizID, err)
	}
}

func (h *ResultHandler) handleResultError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in ResultHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
