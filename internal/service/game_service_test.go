package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/kvizarena-api/internal/domain/entity"
	"github.com/yourusername/kvizarena-api/internal/domain/repository"
	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев
// ============================================================================

// MockQuizRepo реализует repository.QuizRepository
type MockQuizRepo struct {
	mock.Mock
}

func (m *MockQuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizRepo) GetWithQuestions(id uint) (*entity.Quiz, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizRepo) ListWithQuestionCount(limit, offset int) ([]repository.QuizListItem, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]repository.QuizListItem), args.Get(1).(int64), args.Error(2)
}

// MockSessionRepo реализует repository.GameSessionRepository
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(session *entity.GameSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetByID(id string) (*entity.GameSession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GameSession), args.Error(1)
}

func (m *MockSessionRepo) GetActiveByUserAndQuiz(userID, quizID uint) (*entity.GameSession, error) {
	args := m.Called(userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GameSession), args.Error(1)
}

func (m *MockSessionRepo) AdvanceState(sessionID string, expectedIndex int, upd repository.SessionStateUpdate) error {
	args := m.Called(sessionID, expectedIndex, upd)
	return args.Error(0)
}

// MockResultRepo реализует repository.ResultRepository
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Save(result *entity.Result) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepo) GetByUserAndQuiz(userID, quizID uint) (*entity.Result, error) {
	args := m.Called(userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Result), args.Error(1)
}

func (m *MockResultRepo) ListByQuiz(quizID uint, limit, offset int) ([]entity.Result, int64, error) {
	args := m.Called(quizID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Result), args.Get(1).(int64), args.Error(2)
}

func (m *MockResultRepo) ListByUser(userID uint, limit, offset int) ([]entity.Result, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepo) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResultRepo) CountScheduledByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResultRepo) ScoreDistribution(quizID uint) ([]repository.ScoreBucket, error) {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ScoreBucket), args.Error(1)
}

// MockUserRepo реализует repository.UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockAchievementRepo реализует repository.AchievementRepository
type MockAchievementRepo struct {
	mock.Mock
}

func (m *MockAchievementRepo) EnsureCatalog(achievements []entity.Achievement) error {
	args := m.Called(achievements)
	return args.Error(0)
}

func (m *MockAchievementRepo) GetUserAchievementIDs(userID uint) (map[string]bool, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockAchievementRepo) Award(userID uint, achievementID string, awardedAt time.Time) error {
	args := m.Called(userID, achievementID, awardedAt)
	return args.Error(0)
}

func (m *MockAchievementRepo) ListByUser(userID uint) ([]entity.Achievement, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Achievement), args.Error(1)
}

// ============================================================================
// Вспомогательные конструкторы
// ============================================================================

type gameServiceFixture struct {
	svc             *GameService
	quizRepo        *MockQuizRepo
	sessionRepo     *MockSessionRepo
	resultRepo      *MockResultRepo
	userRepo        *MockUserRepo
	achievementRepo *MockAchievementRepo
	now             time.Time
}

func newGameServiceFixture(t *testing.T) *gameServiceFixture {
	t.Helper()
	f := &gameServiceFixture{
		quizRepo:        new(MockQuizRepo),
		sessionRepo:     new(MockSessionRepo),
		resultRepo:      new(MockResultRepo),
		userRepo:        new(MockUserRepo),
		achievementRepo: new(MockAchievementRepo),
		now:             time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	quizService := NewQuizService(f.quizRepo, nil) // без кеша в юнит-тестах
	rankingService := NewRankingService(f.resultRepo)
	achievementService := NewAchievementService(f.achievementRepo, f.resultRepo)
	achievementService.now = func() time.Time { return f.now }

	f.svc = NewGameService(
		quizService,
		f.sessionRepo,
		f.resultRepo,
		f.userRepo,
		rankingService,
		achievementService,
	)
	f.svc.now = func() time.Time { return f.now }
	return f
}

// geographyQuiz - викторина из сценария: 2 вопроса, лимит 15 секунд
func geographyQuiz() *entity.Quiz {
	return &entity.Quiz{
		ID:           7,
		Name:         "Geography",
		TimeLimitSec: 15,
		Questions: []entity.QuizQuestion{
			{
				QuizID: 7, QuestionID: 1, Position: 1,
				Question: entity.Question{
					ID:               1,
					Text:             "Столица Франции?",
					CorrectAnswer:    "Париж",
					IncorrectAnswers: entity.StringArray{"Лион", "Марсель", "Ницца"},
				},
			},
			{
				QuizID: 7, QuestionID: 2, Position: 2,
				Question: entity.Question{
					ID:               2,
					Text:             "Самая длинная река Европы?",
					CorrectAnswer:    "Волга",
					IncorrectAnswers: entity.StringArray{"Дунай", "Рейн", "Днепр"},
					SourceURL:        "https://example.org/volga",
				},
			},
		},
	}
}

// ============================================================================
// StartGame
// ============================================================================

func TestGameService_StartGame_Success(t *testing.T) {
	f := newGameServiceFixture(t)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.resultRepo.On("GetByUserAndQuiz", uint(42), uint(7)).Return(nil, apperrors.ErrNotFound)
	f.sessionRepo.On("GetActiveByUserAndQuiz", uint(42), uint(7)).Return(nil, apperrors.ErrNotFound)
	f.sessionRepo.On("Create", mock.MatchedBy(func(s *entity.GameSession) bool {
		return s.UserID == 42 && s.QuizID == 7 &&
			s.CurrentQuestionIndex == 0 && s.Score == 0 &&
			!s.Completed && s.QuestionStartedAt.Equal(f.now) && s.ID != ""
	})).Return(nil)

	game, err := f.svc.StartGame(7, 42)

	require.NoError(t, err)
	assert.NotEmpty(t, game.SessionID)
	assert.Equal(t, "Geography", game.QuizName)
	assert.Equal(t, 15, game.TimeLimitSec)
	assert.Equal(t, 2, game.TotalQuestions)
	assert.False(t, game.Resumed)
	assert.Equal(t, 1, game.Question.Number)
	assert.Equal(t, "Столица Франции?", game.Question.Text)
	assert.ElementsMatch(t, []string{"Париж", "Лион", "Марсель", "Ницца"}, game.Question.Answers)
	f.sessionRepo.AssertExpectations(t)
}

func TestGameService_StartGame_QuizNotFound(t *testing.T) {
	f := newGameServiceFixture(t)
	f.quizRepo.On("GetWithQuestions", uint(99)).Return(nil, apperrors.ErrNotFound)

	game, err := f.svc.StartGame(99, 42)

	assert.Nil(t, game)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestGameService_StartGame_NoQuestions(t *testing.T) {
	f := newGameServiceFixture(t)
	empty := &entity.Quiz{ID: 8, Name: "Empty", TimeLimitSec: 15}
	f.quizRepo.On("GetWithQuestions", uint(8)).Return(empty, nil)

	game, err := f.svc.StartGame(8, 42)

	assert.Nil(t, game)
	assert.ErrorIs(t, err, ErrQuizHasNoQuestions)
}

func TestGameService_StartGame_NotYetStarted(t *testing.T) {
	f := newGameServiceFixture(t)
	quiz := geographyQuiz()
	start := f.now.Add(90 * time.Second)
	quiz.ScheduledTime = &start
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(quiz, nil)

	game, err := f.svc.StartGame(7, 42)

	assert.Nil(t, game)
	var notStarted *NotYetStartedError
	require.ErrorAs(t, err, &notStarted)
	assert.Equal(t, int64(90), notStarted.StartsInSeconds)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGameService_StartGame_AlreadyCompleted(t *testing.T) {
	f := newGameServiceFixture(t)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.resultRepo.On("GetByUserAndQuiz", uint(42), uint(7)).Return(&entity.Result{
		UserID: 42, QuizID: 7, Score: 1, TotalQuestions: 2,
	}, nil)

	game, err := f.svc.StartGame(7, 42)

	assert.Nil(t, game)
	var completed *AlreadyCompletedError
	require.ErrorAs(t, err, &completed)
	assert.Equal(t, 1, completed.FinalScore)
	assert.Equal(t, 2, completed.TotalQuestions)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGameService_StartGame_ResumesActiveSession(t *testing.T) {
	f := newGameServiceFixture(t)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.resultRepo.On("GetByUserAndQuiz", uint(42), uint(7)).Return(nil, apperrors.ErrNotFound)
	existing := &entity.GameSession{
		ID:                   "11111111-2222-4333-8444-555555555555",
		UserID:               42,
		QuizID:               7,
		CurrentQuestionIndex: 1,
		Score:                1,
		QuestionStartedAt:    f.now.Add(-5 * time.Second),
	}
	f.sessionRepo.On("GetActiveByUserAndQuiz", uint(42), uint(7)).Return(existing, nil)

	game, err := f.svc.StartGame(7, 42)

	require.NoError(t, err)
	assert.True(t, game.Resumed)
	assert.Equal(t, existing.ID, game.SessionID)
	assert.Equal(t, 2, game.Question.Number)
	assert.Equal(t, "Самая длинная река Европы?", game.Question.Text)
	// Новая сессия не создается
	f.sessionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGameService_StartGame_ConcurrentStartResumesWinner(t *testing.T) {
	f := newGameServiceFixture(t)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.resultRepo.On("GetByUserAndQuiz", uint(42), uint(7)).Return(nil, apperrors.ErrNotFound)
	// Первая проверка активной сессии не видит
	f.sessionRepo.On("GetActiveByUserAndQuiz", uint(42), uint(7)).Return(nil, apperrors.ErrNotFound).Once()
	// Вставка проигрывает гонку конкурентному старту:
	// частичный уникальный индекс по (user_id, quiz_id) отдает конфликт
	f.sessionRepo.On("Create", mock.Anything).Return(apperrors.ErrConflict)
	winner := &entity.GameSession{
		ID:                   "99999999-8888-4777-a666-555555555555",
		UserID:               42,
		QuizID:               7,
		CurrentQuestionIndex: 0,
		QuestionStartedAt:    f.now,
	}
	f.sessionRepo.On("GetActiveByUserAndQuiz", uint(42), uint(7)).Return(winner, nil).Once()

	game, err := f.svc.StartGame(7, 42)

	require.NoError(t, err)
	assert.True(t, game.Resumed, "проигравший гонку возобновляет сессию победителя")
	assert.Equal(t, winner.ID, game.SessionID)
	assert.Equal(t, 1, game.Question.Number)
}

// ============================================================================
// SubmitAnswer
// ============================================================================

func activeSession(f *gameServiceFixture, index, score int) *entity.GameSession {
	return &entity.GameSession{
		ID:                   "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee",
		UserID:               42,
		QuizID:               7,
		CurrentQuestionIndex: index,
		Score:                score,
		QuestionStartedAt:    f.now.Add(-5 * time.Second),
		AnswerLog:            entity.AnswerLog{},
	}
}

func TestGameService_SubmitAnswer_CorrectAdvancesToNextQuestion(t *testing.T) {
	f := newGameServiceFixture(t)
	session := activeSession(f, 0, 0)
	f.sessionRepo.On("GetByID", session.ID).Return(session, nil)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.sessionRepo.On("AdvanceState", session.ID, 0, mock.MatchedBy(func(upd repository.SessionStateUpdate) bool {
		return upd.NewIndex == 1 && upd.NewScore == 1 && !upd.Completed &&
			upd.QuestionStartedAt.Equal(f.now) && len(upd.AnswerLog) == 1 &&
			upd.AnswerLog[0].IsCorrect && upd.AnswerLog[0].YourAnswer == "Париж"
	})).Return(nil)

	outcome, err := f.svc.SubmitAnswer(session.ID, 42, "Париж")

	require.NoError(t, err)
	assert.True(t, outcome.IsCorrect)
	assert.Equal(t, FeedbackCorrect, outcome.Feedback)
	assert.Equal(t, "Париж", outcome.CorrectAnswer)
	assert.Equal(t, 1, outcome.CurrentScore)
	assert.False(t, outcome.QuizFinished)
	require.NotNil(t, outcome.NextQuestion)
	assert.Equal(t, 2, outcome.NextQuestion.Number)
	assert.ElementsMatch(t, []string{"Волга", "Дунай", "Рейн", "Днепр"}, outcome.NextQuestion.Answers)
	f.sessionRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_LastQuestionFinishesQuiz(t *testing.T) {
	f := newGameServiceFixture(t)
	session := activeSession(f, 1, 1)
	session.AnswerLog = entity.AnswerLog{{
		QuestionText: "Столица Франции?", YourAnswer: "Париж",
		CorrectAnswer: "Париж", IsCorrect: true, Feedback: FeedbackCorrect,
	}}
	f.sessionRepo.On("GetByID", session.ID).Return(session, nil)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.sessionRepo.On("AdvanceState", session.ID, 1, mock.MatchedBy(func(upd repository.SessionStateUpdate) bool {
		return upd.NewIndex == 2 && upd.NewScore == 2 && upd.Completed && len(upd.AnswerLog) == 2
	})).Return(nil)
	f.userRepo.On("GetByID", uint(42)).Return(&entity.User{ID: 42, Username: "karel"}, nil)
	f.resultRepo.On("Save", mock.MatchedBy(func(r *entity.Result) bool {
		return r.UserID == 42 && r.QuizID == 7 && r.Score == 2 &&
			r.TotalQuestions == 2 && r.Username == "karel" && len(r.AnswerLog) == 2
	})).Return(nil)
	// Историческая популяция: 3 хуже, 1 с тем же счетом (это мы), 0 лучше
	f.resultRepo.On("ScoreDistribution", uint(7)).Return([]repository.ScoreBucket{
		{Score: 0, Players: 1},
		{Score: 1, Players: 2},
		{Score: 2, Players: 1},
	}, nil)
	// Достижения: professor за 100% счет
	f.achievementRepo.On("GetUserAchievementIDs", uint(42)).Return(map[string]bool{}, nil)
	f.resultRepo.On("CountByUser", uint(42)).Return(int64(1), nil)
	f.resultRepo.On("CountScheduledByUser", uint(42)).Return(int64(0), nil)
	f.achievementRepo.On("Award", uint(42), entity.AchievementProfessor, f.now).Return(nil)

	outcome, err := f.svc.SubmitAnswer(session.ID, 42, "Волга")

	require.NoError(t, err)
	assert.True(t, outcome.QuizFinished)
	assert.Equal(t, 2, outcome.FinalScore)
	assert.Nil(t, outcome.NextQuestion)
	require.NotNil(t, outcome.Ranking)
	assert.Equal(t, int64(3), outcome.Ranking.PlayersWorse)
	assert.Equal(t, int64(0), outcome.Ranking.PlayersSame)
	assert.Equal(t, int64(0), outcome.Ranking.PlayersBetter)
	assert.Equal(t, 100, outcome.Ranking.Percentile)
	require.Len(t, outcome.ResultsSummary, 2)
	assert.Equal(t, "https://example.org/volga", outcome.ResultsSummary[1].SourceURL)
	require.Len(t, outcome.NewAchievements, 1)
	assert.Equal(t, entity.AchievementProfessor, outcome.NewAchievements[0].ID)
	f.resultRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_ResultSaveFailureStillReturnsSummary(t *testing.T) {
	f := newGameServiceFixture(t)
	session := activeSession(f, 1, 1)
	session.AnswerLog = entity.AnswerLog{{
		QuestionText: "Столица Франции?", YourAnswer: "Париж",
		CorrectAnswer: "Париж", IsCorrect: true, Feedback: FeedbackCorrect,
	}}
	f.sessionRepo.On("GetByID", session.ID).Return(session, nil)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.sessionRepo.On("AdvanceState", session.ID, 1, mock.Anything).Return(nil)
	f.userRepo.On("GetByID", uint(42)).Return(&entity.User{ID: 42, Username: "karel"}, nil)
	// Сессия уже завершена атомарно; падение записи истории не должно
	// отнимать у игрока его итог
	f.resultRepo.On("Save", mock.Anything).Return(errors.New("connection reset"))
	f.resultRepo.On("ScoreDistribution", uint(7)).Return([]repository.ScoreBucket{
		{Score: 0, Players: 2},
	}, nil)
	f.achievementRepo.On("GetUserAchievementIDs", uint(42)).Return(map[string]bool{}, nil)
	f.resultRepo.On("CountByUser", uint(42)).Return(int64(1), nil)
	f.resultRepo.On("CountScheduledByUser", uint(42)).Return(int64(0), nil)

	// Последний вопрос, ответ неверный: финальный счет 1 из 2
	outcome, err := f.svc.SubmitAnswer(session.ID, 42, "Дунай")

	require.NoError(t, err)
	assert.True(t, outcome.QuizFinished)
	assert.Equal(t, 1, outcome.FinalScore)
	require.NotNil(t, outcome.Ranking)
	assert.Equal(t, int64(2), outcome.Ranking.PlayersWorse)
	assert.Equal(t, 100, outcome.Ranking.Percentile)
	require.Len(t, outcome.ResultsSummary, 2)
}

func TestGameService_SubmitAnswer_TimeoutScoredIncorrect(t *testing.T) {
	f := newGameServiceFixture(t)
	session := activeSession(f, 0, 0)
	session.QuestionStartedAt = f.now.Add(-16 * time.Second) // лимит 15с истек
	f.sessionRepo.On("GetByID", session.ID).Return(session, nil)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	f.sessionRepo.On("AdvanceState", session.ID, 0, mock.MatchedBy(func(upd repository.SessionStateUpdate) bool {
		// Индекс продвигается, счет - нет
		return upd.NewIndex == 1 && upd.NewScore == 0 && !upd.Completed
	})).Return(nil)

	// Текст точно верный, но сабмит пришел на 16-й секунде
	outcome, err := f.svc.SubmitAnswer(session.ID, 42, "Париж")

	require.NoError(t, err)
	assert.False(t, outcome.IsCorrect)
	assert.Equal(t, FeedbackTimeUp, outcome.Feedback)
	assert.Equal(t, "Париж", outcome.CorrectAnswer, "правильный ответ раскрывается")
	assert.Equal(t, 0, outcome.CurrentScore)
}

func TestGameService_SubmitAnswer_SessionNotFound(t *testing.T) {
	f := newGameServiceFixture(t)
	f.sessionRepo.On("GetByID", "missing").Return(nil, apperrors.ErrNotFound)

	outcome, err := f.svc.SubmitAnswer("missing", 42, "x")

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGameService_SubmitAnswer_CompletedSessionRejected(t *testing.T) {
	f := newGameServiceFixture(t)
	session := activeSession(f, 2, 2)
	session.Completed = true
	f.sessionRepo.On("GetByID", session.ID).Return(session, nil)

	outcome, err := f.svc.SubmitAnswer(session.ID, 42, "Париж")

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestGameService_SubmitAnswer_ForeignSessionRejected(t *testing.T) {
	f := newGameServiceFixture(t)
	session := activeSession(f, 0, 0)
	f.sessionRepo.On("GetByID", session.ID).Return(session, nil)

	outcome, err := f.svc.SubmitAnswer(session.ID, 99, "Париж")

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, ErrNotSessionOwner)
	f.sessionRepo.AssertNotCalled(t, "AdvanceState", mock.Anything, mock.Anything, mock.Anything)
}

func TestGameService_SubmitAnswer_StaleSubmissionLosesRace(t *testing.T) {
	f := newGameServiceFixture(t)
	session := activeSession(f, 0, 0)
	f.sessionRepo.On("GetByID", session.ID).Return(session, nil)
	f.quizRepo.On("GetWithQuestions", uint(7)).Return(geographyQuiz(), nil)
	// Конкурентный сабмит уже продвинул индекс - оптимистическая проверка не прошла
	f.sessionRepo.On("AdvanceState", session.ID, 0, mock.Anything).Return(apperrors.ErrStaleState)

	outcome, err := f.svc.SubmitAnswer(session.ID, 42, "Париж")

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, ErrStaleSubmission)
	assert.ErrorIs(t, err, apperrors.ErrStaleState)
	// Результат не сохраняется, ранжирование не вызывается
	f.resultRepo.AssertNotCalled(t, "Save", mock.Anything)
}
