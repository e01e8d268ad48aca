package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
)

// ResultService - read-only доступ к истории завершенных результатов
// для профиля и лидерборда
type ResultService struct {
	resultRepo repository.ResultRepository
	quizRepo   repository.QuizRepository
}

// NewResultService создает новый сервис результатов
func NewResultService(resultRepo repository.ResultRepository, quizRepo repository.QuizRepository) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		quizRepo:   quizRepo,
	}
}

// GetQuizResults возвращает лидерборд викторины с пагинацией
func (s *ResultService) GetQuizResults(quizID uint, page, perPage int) ([]entity.Result, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage
	return s.resultRepo.ListByQuiz(quizID, perPage, offset)
}

// GetUserResults возвращает историю результатов игрока с пагинацией
func (s *ResultService) GetUserResults(userID uint, page, perPage int) ([]entity.Result, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage
	return s.resultRepo.ListByUser(userID, perPage, offset)
}

// GetUserResult возвращает результат игрока для конкретной викторины
func (s *ResultService) GetUserResult(userID, quizID uint) (*entity.Result, error) {
	return s.resultRepo.GetByUserAndQuiz(userID, quizID)
}

// exportResultLimit - максимум строк в одной xlsx-выгрузке
const exportResultLimit = 10000

// ExportQuizResultsXLSX выгружает лидерборд викторины в xlsx.
// Для административной выгрузки, без пагинации; при превышении лимита
// в конец листа добавляется пометка об усечении.
func (s *ResultService) ExportQuizResultsXLSX(quizID uint) (*excelize.File, error) {
	quiz, err := s.quizRepo.GetByID(quizID)
	if err != nil {
		return nil, err
	}

	results, total, err := s.resultRepo.ListByQuiz(quizID, exportResultLimit, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Results"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Rank", "Username", "Score", "Total Questions", "Completed At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range results {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Username)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Score)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.TotalQuestions)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.CompletedAt.Format("2006-01-02 15:04:05"))
	}

	if total > int64(len(results)) {
		noteRow := len(results) + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", noteRow),
			fmt.Sprintf("Showing first %d of %d results", len(results), total))
	}

	f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Results - %s", quiz.Name),
		Creator: "kvizarena-api",
	})
	return f, nil
}
