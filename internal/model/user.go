package model

import (
	"time"

	"gorm.io/gorm"
)

// User carries the account identity plus the cumulative quiz ledger.
// The ledger fields (TotalPoints, WalletBalance, TotalQuizzes,
// CorrectAnswers) are additive only; the sole writer is the quiz
// submission path.
type User struct {
	ID             string         `gorm:"primarykey;type:uuid" json:"user_id"`
	Email          string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash   string         `json:"-" gorm:"not null"`
	FullName       string         `json:"full_name" gorm:"not null"`
	TotalPoints    int            `json:"total_points" gorm:"not null;default:0"`
	WalletBalance  float64        `json:"wallet_balance" gorm:"not null;default:0"`
	TotalQuizzes   int            `json:"total_quizzes" gorm:"not null;default:0"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null;default:0"`
	IsVerified     bool           `json:"is_verified" gorm:"not null;default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
