package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"gorm.io/gorm"
)

// UserStats summarizes a user's standing for the profile page.
type UserStats struct {
	TotalPoints     int
	TotalWasteLogs  int64
	MonthByCategory []repository.CategoryUsage
}

// LeaderboardEntry is one ranked row of the points leaderboard.
type LeaderboardEntry struct {
	Rank      int
	User      model.User
	TotalLogs int64
}

type UserService interface {
	Get(ctx context.Context, id string) (*model.User, int64, error)
	UpdateProfile(ctx context.Context, id string, name, email *string) (*model.User, error)
	Stats(ctx context.Context, id string) (*UserStats, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type userService struct {
	users repository.UserRepository
	logs  repository.WasteLogRepository
}

func NewUserService(users repository.UserRepository, logs repository.WasteLogRepository) UserService {
	return &userService{users: users, logs: logs}
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, int64, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	logCount, err := s.logs.CountByUser(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	return u, logCount, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, name, email *string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if name != nil {
		n := strings.TrimSpace(*name)
		if len(n) < 2 || len(n) > 100 {
			return nil, errors.New("name must be between 2 and 100 characters")
		}
		u.Name = n
	}
	if email != nil {
		e := strings.ToLower(strings.TrimSpace(*email))
		if e == "" || !strings.Contains(e, "@") {
			return nil, errors.New("invalid email")
		}
		if e != u.Email {
			if _, err := s.users.FindByEmail(ctx, e); err == nil {
				return nil, ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			u.Email = e
		}
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Stats(ctx context.Context, id string) (*UserStats, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	logCount, err := s.logs.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	byCategory, err := s.logs.UsageByCategory(ctx, id, startOfMonth)
	if err != nil {
		return nil, err
	}
	return &UserStats{
		TotalPoints:     u.Points,
		TotalWasteLogs:  logCount,
		MonthByCategory: byCategory,
	}, nil
}

func (s *userService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	top, err := s.users.ListTopByPoints(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(top))
	for i, u := range top {
		logCount, err := s.logs.CountByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			Rank:      i + 1,
			User:      u,
			TotalLogs: logCount,
		})
	}
	return entries, nil
}
