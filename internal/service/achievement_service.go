package service

import (
	"errors"
	"log"
	"time"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// AchievementCatalog - все достижения системы.
// Заливается в справочную таблицу при старте приложения.
var AchievementCatalog = []entity.Achievement{
	{
		ID:          entity.AchievementProfessor,
		Name:        "Profesor",
		Description: "Získej 100% skóre v jakémkoli kvízu.",
		IconClass:   "fa-graduation-cap",
	},
	{
		ID:          entity.AchievementWarrior,
		Name:        "Bojovník",
		Description: "Dokonči 3 soutěžní (plánované) kvízy.",
		IconClass:   "fa-shield-alt",
	},
	{
		ID:          entity.AchievementVeteran,
		Name:        "Veterán",
		Description: "Dokonči 10 libovolných kvízů.",
		IconClass:   "fa-medal",
	},
}

// Пороговые значения достижений
const (
	veteranQuizCount = 10
	warriorQuizCount = 3
)

// AchievementService выдает достижения после завершения викторины
type AchievementService struct {
	achievementRepo repository.AchievementRepository
	resultRepo      repository.ResultRepository
	now             func() time.Time
}

// NewAchievementService создает новый сервис достижений
func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	resultRepo repository.ResultRepository,
) *AchievementService {
	return &AchievementService{
		achievementRepo: achievementRepo,
		resultRepo:      resultRepo,
		now:             time.Now,
	}
}

// EnsureCatalog заполняет справочник достижений при старте
func (s *AchievementService) EnsureCatalog() error {
	return s.achievementRepo.EnsureCatalog(AchievementCatalog)
}

// ListUserAchievements возвращает достижения игрока
func (s *AchievementService) ListUserAchievements(userID uint) ([]entity.Achievement, error) {
	return s.achievementRepo.ListByUser(userID)
}

// CheckAndAward проверяет условия всех достижений после завершения викторины
// и возвращает только что выданные. Никогда не валит игровой поток:
// любая ошибка логируется, а не возвращается.
func (s *AchievementService) CheckAndAward(userID uint, newResult *entity.Result) []entity.Achievement {
	existing, err := s.achievementRepo.GetUserAchievementIDs(userID)
	if err != nil {
		log.Printf("[AchievementService] Не удалось получить достижения игрока %d: %v", userID, err)
		return nil
	}

	var earned []string

	// "Профессор": 100% счет в любой викторине
	if !existing[entity.AchievementProfessor] && newResult.IsPerfect() {
		earned = append(earned, entity.AchievementProfessor)
	}

	// "Ветеран": 10 завершенных викторин
	if !existing[entity.AchievementVeteran] {
		total, err := s.resultRepo.CountByUser(userID)
		if err != nil {
			log.Printf("[AchievementService] Не удалось посчитать результаты игрока %d: %v", userID, err)
		} else if total >= veteranQuizCount {
			earned = append(earned, entity.AchievementVeteran)
		}
	}

	// "Боец": 3 завершенные запланированные викторины
	if !existing[entity.AchievementWarrior] {
		scheduled, err := s.resultRepo.CountScheduledByUser(userID)
		if err != nil {
			log.Printf("[AchievementService] Не удалось посчитать запланированные викторины игрока %d: %v", userID, err)
		} else if scheduled >= warriorQuizCount {
			earned = append(earned, entity.AchievementWarrior)
		}
	}

	var awarded []entity.Achievement
	for _, id := range earned {
		if err := s.achievementRepo.Award(userID, id, s.now()); err != nil {
			// ErrConflict - гонка двух завершений, достижение уже выдано
			if !errors.Is(err, apperrors.ErrConflict) {
				log.Printf("[AchievementService] Не удалось выдать достижение %s игроку %d: %v", id, userID, err)
			}
			continue
		}
		if ach, ok := catalogEntry(id); ok {
			awarded = append(awarded, ach)
		}
	}

	if len(awarded) > 0 {
		log.Printf("[AchievementService] Игроку %d выдано %d новых достижений", userID, len(awarded))
	}
	return awarded
}

func catalogEntry(id string) (entity.Achievement, bool) {
	for _, ach := range AchievementCatalog {
		if ach.ID == id {
			return ach, true
		}
	}
	return entity.Achievement{}, false
}
