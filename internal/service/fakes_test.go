package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"gorm.io/gorm"
)

// fakeTx satisfies TxRunner without a database; the callback runs inline.
type fakeTx struct{}

func (fakeTx) Transaction(fc func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeUserRepo struct {
	users      map[string]*model.User
	applyCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) ApplyQuizResult(_ *gorm.DB, userID string, score int, correctCount int) error {
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.TotalPoints += score
	u.TotalQuizzes++
	u.CorrectAnswers += correctCount
	u.WalletBalance += float64(score) * 0.01
	f.applyCalls++
	return nil
}

func (f *fakeUserRepo) TopByPoints(limit int) ([]model.User, error) {
	users := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].TotalPoints > users[j].TotalPoints
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

type fakeQuizRepo struct {
	quizzes map[string]*model.Quiz
	// forceCompleteRows simulates losing the compare-and-set race when set.
	forceCompleteRows *int64
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[string]*model.Quiz)}
}

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error {
	f.quizzes[quiz.ID] = quiz
	return nil
}

func (f *fakeQuizRepo) FindByIDForUser(id string, userID string) (*model.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok || q.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *q
	return &clone, nil
}

func (f *fakeQuizRepo) Complete(_ *gorm.DB, id string, score int, correctCount int, results []model.AnswerResult, completedAt time.Time) (int64, error) {
	if f.forceCompleteRows != nil {
		return *f.forceCompleteRows, nil
	}
	q, ok := f.quizzes[id]
	if !ok || q.Completed {
		return 0, nil
	}
	q.Completed = true
	q.Score = score
	q.CorrectAnswers = correctCount
	q.Results = results
	q.CompletedAt = &completedAt
	return 1, nil
}

func (f *fakeQuizRepo) FindCompletedByUser(userID string, limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, q := range f.quizzes {
		if q.UserID == userID && q.Completed {
			quizzes = append(quizzes, *q)
		}
	}
	sort.SliceStable(quizzes, func(i, j int) bool {
		return quizzes[i].CompletedAt.After(*quizzes[j].CompletedAt)
	})
	if len(quizzes) > limit {
		quizzes = quizzes[:limit]
	}
	return quizzes, nil
}

func (f *fakeQuizRepo) CountCompleted() (int64, error) {
	var count int64
	for _, q := range f.quizzes {
		if q.Completed {
			count++
		}
	}
	return count, nil
}

// stubGenerator returns a fixed question set, standing in for the Gemini
// path in quiz service tests.
type stubGenerator struct {
	questions []model.Question
}

func (s stubGenerator) Generate(_ context.Context, category string, difficulty string, count int) []model.Question {
	if s.questions != nil {
		return finalizeQuestions(s.questions, category, difficulty)
	}
	return finalizeQuestions(fallbackQuestions(category, difficulty, count), category, difficulty)
}

func threeQuestions() []model.Question {
	questions := make([]model.Question, 3)
	for i := range questions {
		questions[i] = model.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Explanation:   fmt.Sprintf("Explanation %d", i+1),
		}
	}
	return questions
}
