package dashboard

import (
	"context"
	"errors"

	"github.com/examportal/practice-lambda/internal/auth"
	"github.com/examportal/practice-lambda/internal/config"
	"github.com/examportal/practice-lambda/internal/question"
	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("unauthorized")

type DashboardService interface {
	Stats(ctx context.Context) (*StatsResponse, error)
}

type dashboardService struct {
	questions question.QuestionRepository
}

func NewService(questions question.QuestionRepository) DashboardService {
	return &dashboardService{questions: questions}
}

func (s *dashboardService) Stats(ctx context.Context) (*StatsResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	total, err := s.questions.CountByOwner(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count questions")
		return nil, err
	}

	categories, err := s.questions.GroupByCategory(userID)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate categories")
		return nil, err
	}

	difficulties, err := s.questions.GroupByDifficulty(userID)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate difficulties")
		return nil, err
	}

	return &StatsResponse{
		TotalQuestions: total,
		Categories:     categories,
		Difficulties:   difficulties,
	}, nil
}
