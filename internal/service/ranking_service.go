package service

import (
	"math"

	"github.com/yourusername/kvizarena-api/internal/domain/repository"
)

// RankingSummary - сравнение финального счета с исторической популяцией
// завершенных результатов той же викторины
type RankingSummary struct {
	PlayersWorse  int64 `json:"players_worse"`
	PlayersSame   int64 `json:"players_same"`
	PlayersBetter int64 `json:"players_better"`
	Percentile    int   `json:"percentile"`
}

// RankingService - движок ранжирования
type RankingService struct {
	resultRepo repository.ResultRepository
}

// NewRankingService создает новый сервис ранжирования
func NewRankingService(resultRepo repository.ResultRepository) *RankingService {
	return &RankingService{resultRepo: resultRepo}
}

// Summarize сравнивает финальный счет с предыдущими результатами викторины.
// Работает поверх агрегатного распределения счетов (GROUP BY score),
// поэтому стоимость не растет со строками результатов.
//
// Политика: собственный, только что сохраненный результат исключается из
// подсчетов - сравниваем игрока с популяцией, существовавшей ДО него.
// Перцентиль = round(100 * worse / totalOthers); 0, если других игроков нет.
func (s *RankingService) Summarize(quizID uint, finalScore int) (*RankingSummary, error) {
	buckets, err := s.resultRepo.ScoreDistribution(quizID)
	if err != nil {
		return nil, err
	}

	summary := &RankingSummary{}
	for _, b := range buckets {
		switch {
		case b.Score < finalScore:
			summary.PlayersWorse += b.Players
		case b.Score > finalScore:
			summary.PlayersBetter += b.Players
		default:
			summary.PlayersSame += b.Players
		}
	}

	// Результат текущего игрока уже сохранен к моменту вызова,
	// убираем его из собственной корзины
	if summary.PlayersSame > 0 {
		summary.PlayersSame--
	}

	totalOthers := summary.PlayersWorse + summary.PlayersSame + summary.PlayersBetter
	if totalOthers > 0 {
		summary.Percentile = int(math.Round(100 * float64(summary.PlayersWorse) / float64(totalOthers)))
	}
	return summary, nil
}
