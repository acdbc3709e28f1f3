package dto

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

// LoginRequest is the payload for an email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummaryDTO is the compact account view returned by register and login.
type UserSummaryDTO struct {
	UserID        string  `json:"user_id"`
	Email         string  `json:"email"`
	FullName      string  `json:"full_name"`
	TotalPoints   int     `json:"total_points"`
	WalletBalance float64 `json:"wallet_balance"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    UserSummaryDTO `json:"user"`
}

// ProfileResponse extends the account summary with the full ledger snapshot.
type ProfileResponse struct {
	UserID         string  `json:"user_id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	TotalPoints    int     `json:"total_points"`
	WalletBalance  float64 `json:"wallet_balance"`
	TotalQuizzes   int     `json:"total_quizzes"`
	CorrectAnswers int     `json:"correct_answers"`
}
