package repository

import (
	"time"

	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	// FindByIDForUser filters by owner so a quiz can never be read or
	// submitted by a different account.
	FindByIDForUser(id string, userID string) (*model.Quiz, error)
	// Complete is an atomic compare-and-set on the completed flag. It
	// returns the number of rows updated: zero means the quiz was already
	// completed (or vanished) and the caller must reject the submission.
	Complete(tx *gorm.DB, id string, score int, correctCount int, results []model.AnswerResult, completedAt time.Time) (int64, error)
	FindCompletedByUser(userID string, limit int) ([]model.Quiz, error)
	CountCompleted() (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByIDForUser(id string, userID string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) Complete(tx *gorm.DB, id string, score int, correctCount int, results []model.AnswerResult, completedAt time.Time) (int64, error) {
	// Select forces zero values (a score of 0 is legitimate) and keeps the
	// jsonb serializer on Results in play.
	res := tx.Model(&model.Quiz{}).
		Where("id = ? AND completed = ?", id, false).
		Select("Completed", "Score", "CorrectAnswers", "Results", "CompletedAt").
		Updates(model.Quiz{
			Completed:      true,
			Score:          score,
			CorrectAnswers: correctCount,
			Results:        results,
			CompletedAt:    &completedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *quizRepository) FindCompletedByUser(userID string, limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Where("user_id = ? AND completed = ?", userID, true).
		Order("completed_at DESC").
		Limit(limit).
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Where("completed = ?", true).Count(&count).Error
	return count, err
}
