package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/kvizarena-api/internal/handler/dto"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
	"github.com/yourusername/kvizarena-api/internal/service"
)

// QuizHandler обрабатывает запросы каталога викторин
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListQuizzes обрабатывает GET /api/game/quizzes - публичный каталог викторин
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	page, perPage := paginationParams(c, 50)

	items, total, err := h.quizService.ListQuizzes(perPage, (page-1)*perPage)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка при получении каталога викторин: %v", err)
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quizzes":  dto.NewQuizListResponse(items),
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

// paginationParams извлекает page/per_page из query-параметров
func paginationParams(c *gin.Context, defaultPerPage int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 || perPage > 100 {
		perPage = defaultPerPage
	}
	return page, perPage
}

func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
