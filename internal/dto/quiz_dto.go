package dto

import "time"

// GenerateQuizRequest asks for a fresh quiz. NumQuestions defaults to 5
// when omitted.
type GenerateQuizRequest struct {
	Category     string `json:"category" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
	NumQuestions int    `json:"num_questions" binding:"omitempty,min=1,max=20"`
}

// SanitizedQuestionDTO is a question as served to a client before
// submission: the correct answer index and explanation are withheld.
type SanitizedQuestionDTO struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Points     int      `json:"points"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
}

// GenerateQuizResponse is the payload for a newly generated quiz.
type GenerateQuizResponse struct {
	QuizID              string                 `json:"quiz_id"`
	Category            string                 `json:"category"`
	Difficulty          string                 `json:"difficulty"`
	Questions           []SanitizedQuestionDTO `json:"questions"`
	TimeLimit           int                    `json:"time_limit"`
	TotalPossiblePoints int                    `json:"total_possible_points"`
}

// QuizAnswerDTO is one submitted answer. SelectedAnswer is the zero-based
// option index; TimeTaken is client-reported seconds.
type QuizAnswerDTO struct {
	QuestionID     string  `json:"question_id" binding:"required"`
	SelectedAnswer int     `json:"selected_answer" binding:"min=0,max=3"`
	TimeTaken      float64 `json:"time_taken"`
}

// SubmitQuizRequest carries all answers for one quiz.
type SubmitQuizRequest struct {
	QuizID  string          `json:"quiz_id" binding:"required"`
	Answers []QuizAnswerDTO `json:"answers" binding:"required,dive"`
}

// AnswerResultDTO reveals the scoring outcome for one answered question.
type AnswerResultDTO struct {
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

// SubmitQuizResponse summarizes a scored submission.
type SubmitQuizResponse struct {
	QuizID         string            `json:"quiz_id"`
	TotalScore     int               `json:"total_score"`
	CorrectAnswers int               `json:"correct_answers"`
	TotalQuestions int               `json:"total_questions"`
	Accuracy       float64           `json:"accuracy"`
	PointsEarned   int               `json:"points_earned"`
	MoneyEarned    float64           `json:"money_earned"`
	Results        []AnswerResultDTO `json:"results"`
}

// LeaderboardEntryDTO is one ranked row of the global leaderboard.
type LeaderboardEntryDTO struct {
	Rank          int     `json:"rank"`
	FullName      string  `json:"full_name"`
	TotalPoints   int     `json:"total_points"`
	TotalQuizzes  int     `json:"total_quizzes"`
	WalletBalance float64 `json:"wallet_balance"`
}

// LeaderboardResponse wraps the ranked list.
type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntryDTO `json:"leaderboard"`
}

// QuizHistoryEntryDTO is the summary projection of one completed quiz;
// question content and per-answer results are intentionally excluded.
type QuizHistoryEntryDTO struct {
	QuizID         string     `json:"quiz_id"`
	Category       string     `json:"category"`
	Difficulty     string     `json:"difficulty"`
	Score          int        `json:"score"`
	CorrectAnswers int        `json:"correct_answers"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// HistoryResponse wraps a user's completed-quiz summaries.
type HistoryResponse struct {
	History []QuizHistoryEntryDTO `json:"history"`
}

// CategoriesResponse lists the fixed quiz categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// StatsResponse is the public service-wide counters payload.
type StatsResponse struct {
	TotalUsers   int64  `json:"total_users"`
	TotalQuizzes int64  `json:"total_quizzes"`
	AppName      string `json:"app_name"`
	Version      string `json:"version"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
