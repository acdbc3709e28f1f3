package service

import (
	"errors"
	"testing"

	"github.com/rimamd894-svg/ai-quiz-pro/internal/dto"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
)

func newAuthTestService() (AuthService, TokenService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	tokens := newTestTokenService()
	return NewAuthService(userRepo, tokens), tokens, userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	auth, tokens, userRepo := newAuthTestService()

	registration := dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
		FullName: "Alice",
	}
	resp, err := auth.Register(registration)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("register returned no token")
	}
	if resp.User.Email != registration.Email || resp.User.FullName != registration.FullName {
		t.Errorf("unexpected user summary: %+v", resp.User)
	}
	if resp.User.TotalPoints != 0 || resp.User.WalletBalance != 0 {
		t.Errorf("new account must start with an empty ledger: %+v", resp.User)
	}

	userID, err := tokens.Verify(resp.Token)
	if err != nil || userID != resp.User.UserID {
		t.Fatalf("register token does not verify to the new user: %v", err)
	}

	stored := userRepo.users[resp.User.UserID]
	if stored.PasswordHash == registration.Password || stored.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	login, err := auth.Login(dto.LoginRequest{Email: registration.Email, Password: registration.Password})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.User.UserID != resp.User.UserID {
		t.Errorf("login resolved a different account: %q vs %q", login.User.UserID, resp.User.UserID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _, _ := newAuthTestService()

	req := dto.RegisterRequest{Email: "alice@example.com", Password: "hunter22", FullName: "Alice"}
	if _, err := auth.Register(req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := auth.Register(req); !errors.Is(err, model.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _, _ := newAuthTestService()

	req := dto.RegisterRequest{Email: "alice@example.com", Password: "hunter22", FullName: "Alice"}
	if _, err := auth.Register(req); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := auth.Login(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := auth.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"}); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
