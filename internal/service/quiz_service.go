package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/dto"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultQuestionCount = 5
	defaultHistoryLimit  = 20
	secondsPerQuestion   = 30
)

// QuizCategories is the fixed list served by the categories endpoint.
var QuizCategories = []string{
	"General Knowledge",
	"Science & Technology",
	"History",
	"Geography",
	"Sports",
	"Entertainment",
	"Literature",
	"Mathematics",
	"Current Affairs",
	"Art & Culture",
}

// QuizService owns the quiz lifecycle: generation, submission scoring, the
// ledger update that follows a submission, and the history projection.
type QuizService interface {
	GenerateQuiz(ctx context.Context, userID string, req dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	SubmitQuiz(userID string, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	GetHistory(userID string, limit int) (*dto.HistoryResponse, error)
}

// TxRunner is the subset of *gorm.DB the service needs to scope the
// completion write and the ledger update to a single transaction.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type quizService struct {
	quizRepo  repository.QuizRepository
	userRepo  repository.UserRepository
	generator QuestionGeneratorService
	db        TxRunner
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	generator QuestionGeneratorService,
	db TxRunner,
) QuizService {
	return &quizService{
		quizRepo:  quizRepo,
		userRepo:  userRepo,
		generator: generator,
		db:        db,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, userID string, req dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	count := req.NumQuestions
	if count <= 0 {
		count = defaultQuestionCount
	}

	questions := s.generator.Generate(ctx, req.Category, req.Difficulty, count)

	totalPoints := 0
	for _, q := range questions {
		totalPoints += q.Points
	}

	quiz := model.Quiz{
		ID:          uuid.NewString(),
		UserID:      userID,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Questions:   questions,
		TotalPoints: totalPoints,
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GenerateQuiz: failed to persist quiz")
		return nil, fmt.Errorf("error saving quiz: %w", err)
	}

	log.Info().Str("quizID", quiz.ID).Str("userID", userID).Str("category", req.Category).
		Str("difficulty", req.Difficulty).Int("questions", len(questions)).Msg("Quiz generated")

	// The answer key stays server-side: the served payload carries neither
	// the correct option index nor the explanation.
	sanitized := make([]dto.SanitizedQuestionDTO, len(questions))
	for i, q := range questions {
		sanitized[i] = dto.SanitizedQuestionDTO{
			ID:         q.ID,
			Question:   q.Question,
			Options:    q.Options,
			Points:     q.Points,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
	}

	return &dto.GenerateQuizResponse{
		QuizID:              quiz.ID,
		Category:            quiz.Category,
		Difficulty:          quiz.Difficulty,
		Questions:           sanitized,
		TimeLimit:           count * secondsPerQuestion,
		TotalPossiblePoints: totalPoints,
	}, nil
}

func (s *quizService) SubmitQuiz(userID string, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	quiz, err := s.quizRepo.FindByIDForUser(req.QuizID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrQuizNotFound
		}
		log.Error().Err(err).Str("quizID", req.QuizID).Msg("SubmitQuiz: quiz lookup failed")
		return nil, fmt.Errorf("error loading quiz: %w", err)
	}
	if quiz.Completed {
		return nil, model.ErrQuizCompleted
	}

	questionMap := make(map[string]model.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionMap[q.ID] = q
	}

	totalScore := 0
	correctCount := 0
	results := make([]model.AnswerResult, 0, len(req.Answers))

	for _, answer := range req.Answers {
		question, exists := questionMap[answer.QuestionID]
		if !exists {
			// Unknown question ids are skipped, not rejected: they earn
			// nothing and produce no result entry.
			log.Warn().Str("quizID", quiz.ID).Str("questionID", answer.QuestionID).
				Msg("SubmitQuiz: answer references unknown question, skipping")
			continue
		}

		isCorrect := answer.SelectedAnswer == question.CorrectAnswer
		pointsEarned := 0
		if isCorrect {
			pointsEarned = question.Points
			totalScore += pointsEarned
			correctCount++
		}

		results = append(results, model.AnswerResult{
			QuestionID:     question.ID,
			Question:       question.Question,
			Options:        question.Options,
			SelectedAnswer: answer.SelectedAnswer,
			CorrectAnswer:  question.CorrectAnswer,
			IsCorrect:      isCorrect,
			PointsEarned:   pointsEarned,
			Explanation:    question.Explanation,
			TimeTaken:      answer.TimeTaken,
		})
	}

	completedAt := time.Now().UTC()

	// The completion flag flip and the ledger update commit together. The
	// compare-and-set inside Complete rejects the loser of a double-submit
	// race before any points are awarded twice.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		rows, err := s.quizRepo.Complete(tx, quiz.ID, totalScore, correctCount, results, completedAt)
		if err != nil {
			return fmt.Errorf("error completing quiz: %w", err)
		}
		if rows == 0 {
			return model.ErrQuizCompleted
		}
		if err := s.userRepo.ApplyQuizResult(tx, userID, totalScore, correctCount); err != nil {
			return fmt.Errorf("error updating user stats: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrQuizCompleted) {
			return nil, model.ErrQuizCompleted
		}
		log.Error().Err(err).Str("quizID", quiz.ID).Msg("SubmitQuiz: completion transaction failed")
		return nil, err
	}

	// A quiz with no questions scores as 0% rather than dividing by zero.
	accuracy := 0.0
	if len(quiz.Questions) > 0 {
		accuracy = float64(correctCount) / float64(len(quiz.Questions)) * 100
	}

	resultDTOs := make([]dto.AnswerResultDTO, 0, len(results))
	if err := copier.Copy(&resultDTOs, &results); err != nil {
		log.Error().Err(err).Msg("SubmitQuiz: failed to copy results to DTOs")
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}

	log.Info().Str("quizID", quiz.ID).Str("userID", userID).Int("score", totalScore).
		Int("correct", correctCount).Msg("Quiz submitted")

	return &dto.SubmitQuizResponse{
		QuizID:         quiz.ID,
		TotalScore:     totalScore,
		CorrectAnswers: correctCount,
		TotalQuestions: len(quiz.Questions),
		Accuracy:       accuracy,
		PointsEarned:   totalScore,
		MoneyEarned:    float64(totalScore) * 0.01,
		Results:        resultDTOs,
	}, nil
}

func (s *quizService) GetHistory(userID string, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	quizzes, err := s.quizRepo.FindCompletedByUser(userID, limit)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetHistory: repository error")
		return nil, fmt.Errorf("error fetching quiz history: %w", err)
	}

	history := make([]dto.QuizHistoryEntryDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		var entry dto.QuizHistoryEntryDTO
		if err := copier.Copy(&entry, &quiz); err != nil {
			log.Error().Err(err).Str("quizID", quiz.ID).Msg("GetHistory: failed to copy quiz to summary")
			continue
		}
		entry.QuizID = quiz.ID
		history = append(history, entry)
	}

	return &dto.HistoryResponse{History: history}, nil
}
