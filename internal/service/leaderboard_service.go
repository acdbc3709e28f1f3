package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/dto"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	defaultLeaderboardLimit = 10

	appName    = "AI Quiz Pro"
	appVersion = "1.0.0"
)

// LeaderboardService serves the read-only projections over the user ledger:
// the ranked leaderboard and the service-wide counters.
type LeaderboardService interface {
	GetLeaderboard(limit int) (*dto.LeaderboardResponse, error)
	GetStats() (*dto.StatsResponse, error)
}

type leaderboardService struct {
	userRepo repository.UserRepository
	quizRepo repository.QuizRepository
}

func NewLeaderboardService(userRepo repository.UserRepository, quizRepo repository.QuizRepository) LeaderboardService {
	return &leaderboardService{userRepo: userRepo, quizRepo: quizRepo}
}

func (s *leaderboardService) GetLeaderboard(limit int) (*dto.LeaderboardResponse, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	users, err := s.userRepo.TopByPoints(limit)
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: repository error")
		return nil, fmt.Errorf("error fetching leaderboard: %w", err)
	}

	// Rank is purely positional; ties keep the store's sort order.
	entries := make([]dto.LeaderboardEntryDTO, 0, len(users))
	for i, user := range users {
		var entry dto.LeaderboardEntryDTO
		if err := copier.Copy(&entry, &user); err != nil {
			log.Error().Err(err).Str("userID", user.ID).Msg("GetLeaderboard: failed to copy user to entry")
			continue
		}
		entry.Rank = i + 1
		entries = append(entries, entry)
	}

	return &dto.LeaderboardResponse{Leaderboard: entries}, nil
}

func (s *leaderboardService) GetStats() (*dto.StatsResponse, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		log.Error().Err(err).Msg("GetStats: user count failed")
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	totalQuizzes, err := s.quizRepo.CountCompleted()
	if err != nil {
		log.Error().Err(err).Msg("GetStats: quiz count failed")
		return nil, fmt.Errorf("error counting quizzes: %w", err)
	}

	return &dto.StatsResponse{
		TotalUsers:   totalUsers,
		TotalQuizzes: totalQuizzes,
		AppName:      appName,
		Version:      appVersion,
	}, nil
}
