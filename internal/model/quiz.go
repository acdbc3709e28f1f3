package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is embedded in a Quiz as part of its jsonb question set; it is
// not a standalone table. CorrectAnswer and Explanation exist only in the
// server-held copy and must never reach a client before submission.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

// AnswerResult is one scored entry of a completed quiz, persisted with the
// quiz row once the submission has been evaluated.
type AnswerResult struct {
	QuestionID     string   `json:"question_id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	SelectedAnswer int      `json:"selected_answer"`
	CorrectAnswer  int      `json:"correct_answer"`
	IsCorrect      bool     `json:"is_correct"`
	PointsEarned   int      `json:"points_earned"`
	Explanation    string   `json:"explanation"`
	TimeTaken      float64  `json:"time_taken"`
}

// Quiz is one generated quiz instance owned by a single user. The question
// set is immutable after generation; the completion fields are written
// exactly once, at submission.
type Quiz struct {
	ID             string         `gorm:"primarykey;type:uuid" json:"quiz_id"`
	UserID         string         `json:"user_id" gorm:"type:uuid;not null;index"`
	Category       string         `json:"category" gorm:"not null"`
	Difficulty     string         `json:"difficulty" gorm:"not null"`
	Questions      []Question     `json:"questions" gorm:"type:jsonb;serializer:json"`
	TotalPoints    int            `json:"total_points" gorm:"not null;default:0"`
	Completed      bool           `json:"completed" gorm:"not null;default:false;index"`
	Score          int            `json:"score" gorm:"not null;default:0"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null;default:0"`
	Results        []AnswerResult `json:"results,omitempty" gorm:"type:jsonb;serializer:json"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
