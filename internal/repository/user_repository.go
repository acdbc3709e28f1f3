package repository

import (
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id string) (*model.User, error)
	// ApplyQuizResult applies the additive ledger update for one completed
	// quiz. It runs on the given handle so the caller can place it inside
	// the same transaction as the quiz completion write.
	ApplyQuizResult(tx *gorm.DB, userID string, score int, correctCount int) error
	TopByPoints(limit int) ([]model.User, error)
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ApplyQuizResult(tx *gorm.DB, userID string, score int, correctCount int) error {
	// Increment in place; the ledger never decreases and no other writer
	// touches these columns. One point is worth $0.01 of wallet balance.
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_points":    gorm.Expr("total_points + ?", score),
			"total_quizzes":   gorm.Expr("total_quizzes + ?", 1),
			"correct_answers": gorm.Expr("correct_answers + ?", correctCount),
			"wallet_balance":  gorm.Expr("wallet_balance + ?", float64(score)*0.01),
		}).Error
}

func (r *userRepository) TopByPoints(limit int) ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("total_points DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
