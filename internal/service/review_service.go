package service

import (
	"context"

	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// ReviewService lists testimonials.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

// NewReviewService builds a ReviewService over repo.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}
