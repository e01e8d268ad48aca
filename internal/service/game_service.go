package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// QuestionView - вопрос в виде, пригодном для отдачи клиенту.
// Только текст и перемешанные варианты: ни флага правильности, ни позиции
// правильного ответа здесь нет и быть не может.
type QuestionView struct {
	Number  int      // 1-based порядковый номер в викторине
	Text    string
	Answers []string // свежая случайная перестановка
}

// StartedGame - результат успешного старта сессии
type StartedGame struct {
	SessionID      string
	QuizName       string
	TimeLimitSec   int
	TotalQuestions int
	Question       QuestionView
	Resumed        bool // true, если возвращена существующая незавершенная сессия
}

// SubmitOutcome - результат обработки одного сабмита
type SubmitOutcome struct {
	IsCorrect      bool
	Feedback       string
	CorrectAnswer  string
	CurrentScore   int
	TotalQuestions int
	QuizFinished   bool

	// Заполняется, пока викторина не закончена
	NextQuestion *QuestionView

	// Заполняется при завершении
	FinalScore      int
	Ranking         *RankingSummary
	ResultsSummary  entity.AnswerLog
	NewAchievements []entity.Achievement
}

// GameService - оркестратор игровых сессий: старт, цикл по вопросам,
// завершение. Долгоживущего состояния в процессе нет - всё состояние сессии
// живет в хранилище между независимыми запросами.
type GameService struct {
	quizService        *QuizService
	sessionRepo        repository.GameSessionRepository
	resultRepo         repository.ResultRepository
	userRepo           repository.UserRepository
	rankingService     *RankingService
	achievementService *AchievementService

	// подменяется в тестах
	now func() time.Time
}

// NewGameService создает новый игровой оркестратор
func NewGameService(
	quizService *QuizService,
	sessionRepo repository.GameSessionRepository,
	resultRepo repository.ResultRepository,
	userRepo repository.UserRepository,
	rankingService *RankingService,
	achievementService *AchievementService,
) *GameService {
	return &GameService{
		quizService:        quizService,
		sessionRepo:        sessionRepo,
		resultRepo:         resultRepo,
		userRepo:           userRepo,
		rankingService:     rankingService,
		achievementService: achievementService,
		now:                time.Now,
	}
}

// StartGame начинает новую попытку прохождения викторины.
//
// Отказы: викторины нет или в ней нет вопросов; запланированная викторина
// еще не стартовала (NotYetStartedError с секундами до старта); игрок уже
// завершил эту викторину (AlreadyCompletedError с прежним счетом).
// Если у игрока уже есть незавершенная сессия этой викторины, она
// возвращается как есть: таймер текущего вопроса не сбрасывается, варианты
// перемешиваются заново.
func (s *GameService) StartGame(quizID, userID uint) (*StartedGame, error) {
	quiz, err := s.quizService.GetQuizWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, ErrQuizHasNoQuestions
	}

	now := s.now()
	if quiz.IsScheduledAfter(now) {
		return nil, &NotYetStartedError{
			StartTime:       *quiz.ScheduledTime,
			StartsInSeconds: quiz.SecondsUntilStart(now),
		}
	}

	// Повторный старт завершенной викторины запрещен
	if prior, err := s.resultRepo.GetByUserAndQuiz(userID, quizID); err == nil {
		return nil, &AlreadyCompletedError{
			FinalScore:     prior.Score,
			TotalQuestions: prior.TotalQuestions,
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// Не более одной незавершенной сессии на пару (игрок, викторина):
	// существующую возвращаем, не пересоздавая и не трогая её таймер
	if existing, err := s.sessionRepo.GetActiveByUserAndQuiz(userID, quizID); err == nil {
		return s.resumeSession(quiz, existing)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	session := entity.NewGameSession(userID, quizID, now)
	if err := s.sessionRepo.Create(session); err != nil {
		// Конкурентный старт успел создать сессию между проверкой и вставкой:
		// частичный уникальный индекс отдал ErrConflict, возобновляем победителя
		if errors.Is(err, apperrors.ErrConflict) {
			existing, getErr := s.sessionRepo.GetActiveByUserAndQuiz(userID, quizID)
			if getErr != nil {
				return nil, getErr
			}
			return s.resumeSession(quiz, existing)
		}
		return nil, err
	}
	log.Printf("[GameService] Игрок %d начал викторину %d, сессия %s", userID, quizID, session.ID)

	return &StartedGame{
		SessionID:      session.ID,
		QuizName:       quiz.Name,
		TimeLimitSec:   quiz.TimeLimitSec,
		TotalQuestions: len(quiz.Questions),
		Question:       questionView(0, quiz.QuestionAt(0)),
	}, nil
}

// resumeSession возвращает существующую незавершенную сессию как стартовый
// ответ: тот же идентификатор, текущий вопрос со свежей перестановкой,
// таймер вопроса не сбрасывается
func (s *GameService) resumeSession(quiz *entity.Quiz, existing *entity.GameSession) (*StartedGame, error) {
	question := quiz.QuestionAt(existing.CurrentQuestionIndex)
	if question == nil {
		return nil, fmt.Errorf("session %s points past the end of quiz %d", existing.ID, existing.QuizID)
	}
	log.Printf("[GameService] Игрок %d возобновил сессию %s викторины %d", existing.UserID, existing.ID, existing.QuizID)
	return &StartedGame{
		SessionID:      existing.ID,
		QuizName:       quiz.Name,
		TimeLimitSec:   quiz.TimeLimitSec,
		TotalQuestions: len(quiz.Questions),
		Question:       questionView(existing.CurrentQuestionIndex, question),
		Resumed:        true,
	}, nil
}

// SubmitAnswer обрабатывает сабмит ответа для текущего вопроса сессии.
//
// Таймаут оценивается здесь, по wall-clock относительно момента показа
// вопроса; фоновых таймеров нет. Индекс продвигается всегда, счет - только
// за верный ответ в пределах лимита. Обновление состояния атомарно
// (оптимистическая проверка индекса в хранилище): из двух конкурентных
// сабмитов продвинется ровно один, второй получит ErrStaleSubmission,
// не изменив сессию.
func (s *GameService) SubmitAnswer(sessionID string, userID uint, answerText string) (*SubmitOutcome, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !session.IsOwnedBy(userID) {
		return nil, ErrNotSessionOwner
	}
	if session.Completed {
		return nil, ErrSessionCompleted
	}

	quiz, err := s.quizService.GetQuizWithQuestions(session.QuizID)
	if err != nil {
		return nil, err
	}
	question := quiz.QuestionAt(session.CurrentQuestionIndex)
	if question == nil {
		return nil, fmt.Errorf("session %s points past the end of quiz %d", session.ID, session.QuizID)
	}

	now := s.now()
	limit := time.Duration(quiz.TimeLimitSec) * time.Second
	verdict := CheckAnswer(question, answerText, session.Elapsed(now), limit)

	newScore := session.Score
	if verdict.IsCorrect {
		newScore++
	}

	newLog := append(entity.AnswerLog{}, session.AnswerLog...)
	newLog = append(newLog, entity.AnswerLogEntry{
		QuestionText:  question.Text,
		YourAnswer:    answerText,
		CorrectAnswer: question.CorrectAnswer,
		IsCorrect:     verdict.IsCorrect,
		Feedback:      verdict.Feedback,
		SourceURL:     question.SourceURL,
	})

	newIndex := session.CurrentQuestionIndex + 1
	finished := newIndex == len(quiz.Questions)

	err = s.sessionRepo.AdvanceState(session.ID, session.CurrentQuestionIndex, repository.SessionStateUpdate{
		NewIndex:          newIndex,
		NewScore:          newScore,
		QuestionStartedAt: now,
		Completed:         finished,
		AnswerLog:         newLog,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStaleState) {
			return nil, ErrStaleSubmission
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	outcome := &SubmitOutcome{
		IsCorrect:      verdict.IsCorrect,
		Feedback:       verdict.Feedback,
		CorrectAnswer:  question.CorrectAnswer,
		CurrentScore:   newScore,
		TotalQuestions: len(quiz.Questions),
		QuizFinished:   finished,
	}

	if !finished {
		next := questionView(newIndex, quiz.QuestionAt(newIndex))
		outcome.NextQuestion = &next
		return outcome, nil
	}

	return s.finishGame(session, quiz, newScore, newLog, now, outcome)
}

// finishGame завершает сессию: сохраняет итоговый результат, считает
// ранжирование и проверяет достижения
func (s *GameService) finishGame(
	session *entity.GameSession,
	quiz *entity.Quiz,
	finalScore int,
	answerLog entity.AnswerLog,
	now time.Time,
	outcome *SubmitOutcome,
) (*SubmitOutcome, error) {
	result := &entity.Result{
		UserID:         session.UserID,
		QuizID:         session.QuizID,
		SessionID:      session.ID,
		Score:          finalScore,
		TotalQuestions: len(quiz.Questions),
		AnswerLog:      answerLog,
		CompletedAt:    now,
	}
	if user, err := s.userRepo.GetByID(session.UserID); err == nil {
		result.Username = user.Username
		result.ProfilePicture = user.ProfilePicture
	} else {
		log.Printf("[GameService] Не удалось получить профиль игрока %d: %v", session.UserID, err)
	}

	if err := s.resultRepo.Save(result); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Сессия уже завершена атомарно, а результат для пары
			// (игрок, викторина) существует - гонка параллельного
			// завершения. Историю не дублируем, итог отдаем.
			log.Printf("[GameService] Дубликат результата для игрока %d, викторина %d", session.UserID, session.QuizID)
		} else {
			// Сессия уже завершена атомарно, откатить это нельзя.
			// Игрок получает свой итог; без записи Result повторный старт
			// возможен и создаст свежую сессию.
			log.Printf("[GameService] Не удалось сохранить результат игрока %d для викторины %d: %v",
				session.UserID, session.QuizID, err)
		}
	}

	ranking, err := s.rankingService.Summarize(session.QuizID, finalScore)
	if err != nil {
		// Сессия уже завершена; итог игрока важнее сводки ранжирования
		log.Printf("[GameService] Ошибка ранжирования для викторины %d: %v", session.QuizID, err)
		ranking = &RankingSummary{}
	}

	outcome.FinalScore = finalScore
	outcome.Ranking = ranking
	outcome.ResultsSummary = answerLog
	outcome.NewAchievements = s.achievementService.CheckAndAward(session.UserID, result)

	log.Printf("[GameService] Игрок %d завершил викторину %d со счетом %d/%d (перцентиль %d)",
		session.UserID, session.QuizID, finalScore, len(quiz.Questions), ranking.Percentile)
	return outcome, nil
}

// questionView собирает клиентское представление вопроса со свежей
// случайной перестановкой вариантов
func questionView(index int, question *entity.Question) QuestionView {
	return QuestionView{
		Number:  index + 1,
		Text:    question.Text,
		Answers: question.ShuffledAnswers(),
	}
}
